package table

import "sort"

// Entry is one key/value pair of a Record.
type Entry struct {
	Key   string
	Value interface{}
}

// Record is an ordered set of key/value pairs. Unlike a map its key order is
// significant: the first record given to FromRecords fixes the column order.
type Record []Entry

// R builds a Record from alternating keys and values. It panics on an odd
// argument count or a non-string key.
func R(kv ...interface{}) Record {
	if len(kv)%2 != 0 {
		panic("table.R: odd number of arguments")
	}
	r := make(Record, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("table.R: key is not a string")
		}
		r = append(r, Entry{Key: key, Value: kv[i+1]})
	}
	return r
}

func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, e := range r {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the value stored under key. A key present with a nil value
// reports ok.
func (r Record) Get(key string) (interface{}, bool) {
	for _, e := range r {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// recordFromMap orders the map's entries by key.
func recordFromMap(m map[string]interface{}) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := make(Record, len(keys))
	for i, k := range keys {
		r[i] = Entry{Key: k, Value: m[k]}
	}
	return r
}

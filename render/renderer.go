package render

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"frames/interop"
	"frames/table"
)

// Style selects how a Renderer lays out a table.
type Style string

const (
	// Grid is a bordered grid with a rule under the header.
	Grid Style = "grid"
	// Plain drops the borders and separates columns with spaces.
	Plain Style = "plain"

	// The remaining styles hand the table to a dataframe library and print
	// whatever that library prints.
	Gota        Style = "gota"
	QFrame      Style = "qframe"
	DataFrameGo Style = "dataframe-go"
)

var ErrUnknownStyle = errors.New("unknown display style")

var styles = []Style{Grid, Plain, Gota, QFrame, DataFrameGo}

// ParseStyle maps a style name onto a Style.
func ParseStyle(name string) (Style, error) {
	for _, s := range styles {
		if string(s) == strings.ToLower(strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownStyle, "%q", name)
}

// Renderer produces the display string of a table. It holds no state
// between calls, so rendering the same table twice gives the same text.
type Renderer struct {
	style       Style
	emptyMarker string
}

type Option func(*Renderer)

func WithStyle(s Style) Option {
	return func(r *Renderer) {
		r.style = s
	}
}

// WithEmptyMarker sets the text printed for a table without columns.
func WithEmptyMarker(marker string) Option {
	return func(r *Renderer) {
		r.emptyMarker = marker
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		style:       Grid,
		emptyMarker: DefaultEmptyMarker,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the display string of t, ending in a newline.
func (r *Renderer) Render(t *table.Table) (string, error) {
	if t.Ncol() == 0 {
		return r.emptyMarker + "\n", nil
	}

	var b strings.Builder
	switch r.style {
	case Grid:
		writeTable(&b, t, true)
	case Plain:
		writeTable(&b, t, false)
	case Gota:
		df, err := interop.Gota(t)
		if err != nil {
			return "", err
		}
		b.WriteString(df.String())
	case QFrame:
		qf, err := interop.QFrame(t)
		if err != nil {
			return "", err
		}
		b.WriteString(qf.String())
	case DataFrameGo:
		df, err := interop.DataFrameGo(t)
		if err != nil {
			return "", err
		}
		b.WriteString(df.Table())
	default:
		return "", errors.Wrapf(ErrUnknownStyle, "%q", r.style)
	}

	s := b.String()
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s, nil
}

// Write renders t to w.
func (r *Renderer) Write(w io.Writer, t *table.Table) error {
	s, err := r.Render(t)
	if err != nil {
		return errors.Wrapf(err, "rendering %s", r.style)
	}
	_, err = io.WriteString(w, s)
	return err
}

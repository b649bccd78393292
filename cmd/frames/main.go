package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"frames/config"
	"frames/logger"
	"frames/render"
	"frames/table"
)

var (
	peopleColumns = []string{"id", "name", "sex", "age"}
	peopleRows    = [][]interface{}{
		{1, "Jesse", "male", 25},
		{2, "Jane", "female", 25},
		{3, "Mark", "male", 20},
		{4, "Peter", "male", 55},
		{5, "Paula", "female", 35},
	}

	scoreRecords = []table.Record{
		table.R("A", 1, "B", 10),
		table.R("A", 2, "B", 20),
		table.R("A", 3, "B", 30),
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(config.Default().Log)
		log.Error().Err(err).Msg("Unable to load configuration")
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	if err := run(os.Stdout, cfg, log); err != nil {
		log.Error().Stack().Err(err).Msg("frames failed")
		os.Exit(1)
	}
}

func run(w io.Writer, cfg *config.Config, log zerolog.Logger) error {
	r := render.New(
		render.WithStyle(cfg.Display.Style),
		render.WithEmptyMarker(cfg.Display.EmptyMarker),
	)

	people, err := table.FromColumnsAndRows(peopleColumns, peopleRows)
	if err != nil {
		return err
	}
	log.Debug().Int("rows", people.Nrow()).Int("columns", people.Ncol()).Msg("built people table")

	if err := render.WriteRows(w, people); err != nil {
		return err
	}
	if err := r.Write(w, people); err != nil {
		return errors.Wrap(err, "people")
	}

	scores, err := table.FromRecords(scoreRecords)
	if err != nil {
		return err
	}
	log.Debug().Int("rows", scores.Nrow()).Int("columns", scores.Ncol()).Msg("built scores table")

	return errors.Wrap(r.Write(w, scores), "scores")
}

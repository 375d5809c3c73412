// Package seed imports task records from a YAML or JSON document into a
// task store, typically at boot to carry over records kept elsewhere.
package seed

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrMissingID = errors.New("missing task id")

type Document struct {
	Tasks []model.Task `yaml:"tasks"`
}

type Report struct {
	Created int
	Skipped int
}

// Decode reads a seed document. JSON documents are accepted since JSON is a
// subset of YAML.
func Decode(r io.Reader) ([]model.Task, error) {
	var doc Document

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Task{}, nil
		}

		return nil, errors.Wrap(err, "could not decode seed document")
	}

	for i, t := range doc.Tasks {
		if t.ID == "" {
			return nil, errors.Wrapf(ErrMissingID, "task #%d", i)
		}
	}

	return doc.Tasks, nil
}

// Import creates every task missing from the store. Tasks already present
// are left untouched so that importing the same document twice is a no-op.
func Import(ctx context.Context, store port.TaskStore, tasks []model.Task) (Report, error) {
	var report Report

	for _, t := range tasks {
		if err := store.Create(ctx, t); err != nil {
			if errors.Is(err, port.ErrAlreadyExists) {
				slog.DebugContext(ctx, "task already exists, skipping", slog.String("taskID", string(t.ID)))
				report.Skipped++
				continue
			}

			return report, errors.Wrapf(err, "could not import task '%s'", t.ID)
		}

		report.Created++
	}

	return report, nil
}

// ImportFile decodes the seed document at path and imports it.
func ImportFile(ctx context.Context, store port.TaskStore, path string) (Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return Report{}, errors.WithStack(err)
	}

	defer file.Close()

	tasks, err := Decode(file)
	if err != nil {
		return Report{}, errors.Wrapf(err, "could not read '%s'", path)
	}

	report, err := Import(ctx, store, tasks)
	if err != nil {
		return report, errors.WithStack(err)
	}

	return report, nil
}

package config

import (
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := []string{"Lucas Grangeiro", "Caterine", "Luís Cabral"}, conf.Office.Procuradores; !slices.Equal(e, g) {
		t.Errorf("conf.Office.Procuradores: expected %v, got %v", e, g)
	}

	if e, g := []string{"Judicial", "Administrativo"}, conf.Office.Types; !slices.Equal(e, g) {
		t.Errorf("conf.Office.Types: expected %v, got %v", e, g)
	}

	if e, g := "sqlite://data.sqlite", conf.Storage.URI; e != g {
		t.Errorf("conf.Storage.URI: expected %s, got %s", e, g)
	}

	if e, g := slog.LevelInfo, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected %s, got %s", e, g)
	}
}

func TestParse(t *testing.T) {
	t.Setenv("PROCURADORIA_LOGGER_LEVEL", "debug")
	t.Setenv("PROCURADORIA_STORAGE_URI", "memory://")
	t.Setenv("PROCURADORIA_EXPORT_TIMEOUT", "10s")
	t.Setenv("PROCURADORIA_OFFICE_PROCURADORES", "Ana,Bruno")
	t.Setenv("PROCURADORIA_OFFICE_LOCATION", "UTC")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := slog.LevelDebug, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected %s, got %s", e, g)
	}

	if e, g := "memory://", conf.Storage.URI; e != g {
		t.Errorf("conf.Storage.URI: expected %s, got %s", e, g)
	}

	if e, g := 10*time.Second, conf.Export.Timeout; e != g {
		t.Errorf("conf.Export.Timeout: expected %s, got %s", e, g)
	}

	if e, g := []string{"Ana", "Bruno"}, conf.Office.Procuradores; !slices.Equal(e, g) {
		t.Errorf("conf.Office.Procuradores: expected %v, got %v", e, g)
	}

	location, err := conf.Office.LoadLocation()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := time.UTC, location; e != g {
		t.Errorf("location: expected %s, got %s", e, g)
	}
}

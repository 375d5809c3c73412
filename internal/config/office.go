package config

import (
	"time"

	"github.com/pkg/errors"
)

type Office struct {
	Procuradores []string `env:"PROCURADORES,expand" envDefault:"Lucas Grangeiro,Caterine,Luís Cabral" envSeparator:","`
	Types        []string `env:"TYPES,expand" envDefault:"Judicial,Administrativo" envSeparator:","`
	// Assessores are offered as suggestions on the task form.
	Assessores []string `env:"ASSESSORES,expand" envSeparator:","`
	Location   string   `env:"LOCATION,expand" envDefault:"America/Fortaleza"`
}

func (o Office) LoadLocation() (*time.Location, error) {
	location, err := time.LoadLocation(o.Location)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load location '%s'", o.Location)
	}

	return location, nil
}

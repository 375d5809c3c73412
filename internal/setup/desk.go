package setup

import (
	"context"

	"github.com/bornholm/procuradoria/internal/config"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/pkg/errors"
)

// NewDeskFromConfig returns the shared desk. The caller is responsible for
// running it.
func NewDeskFromConfig(ctx context.Context, conf *config.Config) (*service.Desk, error) {
	desk, err := getDeskFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return desk, nil
}

var getDeskFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.Desk, error) {
	store, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create task store from config")
	}

	location, err := conf.Office.LoadLocation()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	desk := service.NewDesk(store,
		service.WithDeskRoster(conf.Office.Procuradores...),
		service.WithDeskTypes(conf.Office.Types...),
		service.WithDeskLocation(location),
	)

	return desk, nil
})

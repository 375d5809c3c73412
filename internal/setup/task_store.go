package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/procuradoria/internal/adapter/cache"
	"github.com/bornholm/procuradoria/internal/adapter/seed"
	"github.com/bornholm/procuradoria/internal/config"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/pkg/errors"
)

var TaskStore = NewRegistry[port.TaskStore]()

var getTaskStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TaskStore, error) {
	store, err := TaskStore.From(conf.Storage.URI)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create task store for uri '%s'", conf.Storage.URI)
	}

	if conf.Storage.SeedFile != "" {
		report, err := seed.ImportFile(ctx, store, conf.Storage.SeedFile)
		if err != nil {
			return nil, errors.Wrapf(err, "could not import seed file '%s'", conf.Storage.SeedFile)
		}

		slog.InfoContext(ctx, "seed file imported",
			slog.String("file", conf.Storage.SeedFile),
			slog.Int("created", report.Created),
			slog.Int("skipped", report.Skipped),
		)
	}

	if conf.Storage.Cache.Enabled {
		store = cache.NewTaskStore(store, conf.Storage.Cache.Size, conf.Storage.Cache.TTL)
	}

	return store, nil
})

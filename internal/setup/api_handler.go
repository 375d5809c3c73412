package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/procuradoria/internal/config"
	"github.com/bornholm/procuradoria/internal/http/handler/api"
	"github.com/bornholm/procuradoria/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	desk, err := getDeskFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	reporter, err := getReporterFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var handler http.Handler = api.NewHandler(desk, reporter)

	if conf.HTTP.RateLimit.Enabled {
		rateLimit := ratelimit.Middleware(ratelimit.Options{
			Interval:     conf.HTTP.RateLimit.Interval,
			Burst:        conf.HTTP.RateLimit.Burst,
			CacheSize:    conf.HTTP.RateLimit.CacheSize,
			CacheTTL:     conf.HTTP.RateLimit.CacheTTL,
			TrustHeaders: conf.HTTP.RateLimit.TrustHeaders,
		})

		handler = rateLimit(handler)
	}

	handler = cors.New(cors.Options{
		AllowedOrigins: conf.HTTP.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(handler)

	return handler, nil
}

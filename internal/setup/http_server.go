package setup

import (
	"context"

	"github.com/bornholm/procuradoria/internal/config"
	"github.com/bornholm/procuradoria/internal/http"
	"github.com/bornholm/procuradoria/internal/http/handler/metrics"
	"github.com/bornholm/procuradoria/internal/http/handler/webui"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	desk, err := getDeskFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create desk from config")
	}

	reporter, err := getReporterFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create reporter from config")
	}

	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create session store from config")
	}

	assets := common.NewHandler()

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/assets/", assets),
		http.WithMount("/api/v1/", api),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithMount("/", webui.NewHandler(desk, reporter, sessionStore, conf.Office.Assessores)),
	}

	if conf.HTTP.BasicAuth.Username != "" && conf.HTTP.BasicAuth.Password != "" {
		options = append(options, http.WithBasicAuth(conf.HTTP.BasicAuth.Username, conf.HTTP.BasicAuth.Password))
	}

	server := http.NewServer(options...)

	return server, nil
}

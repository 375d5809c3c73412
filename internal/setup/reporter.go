package setup

import (
	"context"

	"github.com/bornholm/procuradoria/internal/adapter/chromedp"
	"github.com/bornholm/procuradoria/internal/config"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/relatorio/component"
	"github.com/pkg/errors"
)

var getReporterFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.Reporter, error) {
	desk, err := getDeskFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Left nil when disabled so that exports report themselves unavailable.
	var exporter port.ReportExporter

	if conf.Export.Enabled {
		exporter = chromedp.NewExporter(
			chromedp.WithExecPath(conf.Export.ChromePath),
			chromedp.WithHeadless(conf.Export.Headless),
			chromedp.WithTimeout(conf.Export.Timeout),
		)
	}

	return service.NewReporter(desk, component.NewDocumentRenderer(), exporter), nil
})

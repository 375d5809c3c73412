package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/metrics"
	"github.com/pkg/errors"
)

var ErrExportUnavailable = errors.New("report export unavailable")

type ExportedReport struct {
	Filename string
	Rows     int
	Content  io.ReadCloser
}

// Reporter exports the report table of the desk as a PDF document.
type Reporter struct {
	desk     *Desk
	renderer port.ReportRenderer
	exporter port.ReportExporter
}

func (r *Reporter) Export(ctx context.Context, filter view.ReportFilter) (*ExportedReport, error) {
	if r.exporter == nil || r.renderer == nil {
		return nil, errors.WithStack(ErrExportUnavailable)
	}

	now := r.desk.Now()
	projection := view.Reports(r.desk.Tasks(), filter)
	filename := view.ReportFilename(filter.Procurador, now)

	html, err := r.renderer.Render(ctx, projection, now)
	if err != nil {
		metrics.ReportExports.WithLabelValues("failed").Inc()
		return nil, errors.Wrap(err, "could not render report")
	}

	content, err := r.exporter.Export(ctx, port.ReportDocument{
		Title:    view.ReportTitle,
		Filename: filename,
		HTML:     html,
	})
	if err != nil {
		metrics.ReportExports.WithLabelValues("failed").Inc()

		slog.ErrorContext(ctx, "could not export report", slog.String("filename", filename), slogx.Error(errors.WithStack(err)))

		return nil, errors.Wrap(ErrExportUnavailable, err.Error())
	}

	metrics.ReportExports.WithLabelValues("succeeded").Inc()

	return &ExportedReport{
		Filename: filename,
		Rows:     len(projection.Rows),
		Content:  content,
	}, nil
}

func NewReporter(desk *Desk, renderer port.ReportRenderer, exporter port.ReportExporter) *Reporter {
	return &Reporter{
		desk:     desk,
		renderer: renderer,
		exporter: exporter,
	}
}

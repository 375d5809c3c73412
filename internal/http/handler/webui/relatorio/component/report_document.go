package component

import (
	"bytes"
	"context"
	"time"

	"github.com/a-h/templ"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/core/view"
	commonComp "github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

// ReportDocumentVModel is the standalone page printed to PDF.
type ReportDocumentVModel struct {
	Title       string
	GeneratedAt time.Time
	Report      view.ReportProjection
}

func ReportDocument(vmodel ReportDocumentVModel) templ.Component {
	return commonComp.Render(reportTemplate, "report_document", vmodel)
}

type DocumentRenderer struct{}

// Render implements port.ReportRenderer.
func (r *DocumentRenderer) Render(ctx context.Context, projection view.ReportProjection, generatedAt time.Time) ([]byte, error) {
	var buff bytes.Buffer

	document := ReportDocument(ReportDocumentVModel{
		Title:       view.ReportTitle,
		GeneratedAt: generatedAt,
		Report:      projection,
	})

	if err := document.Render(ctx, &buff); err != nil {
		return nil, errors.WithStack(err)
	}

	return buff.Bytes(), nil
}

func NewDocumentRenderer() *DocumentRenderer {
	return &DocumentRenderer{}
}

var _ port.ReportRenderer = &DocumentRenderer{}

package port

import (
	"context"
	"io"
	"time"

	"github.com/bornholm/procuradoria/internal/core/view"
)

type ReportDocument struct {
	Title    string
	Filename string
	HTML     []byte
}

// ReportRenderer turns report rows into a standalone HTML page.
type ReportRenderer interface {
	Render(ctx context.Context, projection view.ReportProjection, generatedAt time.Time) ([]byte, error)
}

// ReportExporter prints a standalone HTML report page as a PDF document.
type ReportExporter interface {
	Export(ctx context.Context, doc ReportDocument) (io.ReadCloser, error)
}

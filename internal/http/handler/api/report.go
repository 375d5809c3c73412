package api

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/pkg/errors"
)

func serveReport(w http.ResponseWriter, r *http.Request, report *service.ExportedReport) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": report.Filename}))

	if _, err := io.Copy(w, report.Content); err != nil {
		slog.ErrorContext(r.Context(), "could not write report", slogx.Error(errors.WithStack(err)))
	}
}

package relatorio

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func (h *Handler) handleReportExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.reporter.Export(ctx, getReportFilter(r))
	if err != nil {
		if errors.Is(err, service.ErrExportUnavailable) {
			h.flashes.Add(w, r, commonComp.FlashError, "Não foi possível gerar o PDF.")

			redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("/relatorios/"), commonComp.WithValues(
				"procurador", r.URL.Query().Get("procurador"),
				"status", r.URL.Query().Get("status"),
				"month", r.URL.Query().Get("month"),
			))

			http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	defer report.Content.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": report.Filename}))

	if _, err := io.Copy(w, report.Content); err != nil {
		slog.ErrorContext(ctx, "could not write report", slogx.Error(errors.WithStack(err)))
	}
}

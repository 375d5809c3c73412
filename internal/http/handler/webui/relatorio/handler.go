package relatorio

import (
	"net/http"

	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
)

type Handler struct {
	mux      *http.ServeMux
	desk     *service.Desk
	reporter *service.Reporter
	flashes  *common.Flashes
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(desk *service.Desk, reporter *service.Reporter, flashes *common.Flashes) *Handler {
	h := &Handler{
		mux:      http.NewServeMux(),
		desk:     desk,
		reporter: reporter,
		flashes:  flashes,
	}

	h.mux.HandleFunc("GET /{$}", h.getReportPage)
	h.mux.HandleFunc("GET /export.pdf", h.handleReportExport)

	return h
}

var _ http.Handler = &Handler{}

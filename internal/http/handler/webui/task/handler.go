package task

import (
	"net/http"

	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
)

type Handler struct {
	mux        *http.ServeMux
	desk       *service.Desk
	flashes    *common.Flashes
	assessores []string
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(desk *service.Desk, flashes *common.Flashes, assessores []string) *Handler {
	h := &Handler{
		mux:        http.NewServeMux(),
		desk:       desk,
		flashes:    flashes,
		assessores: assessores,
	}

	h.mux.HandleFunc("GET /new", h.getTaskCreatePage)
	h.mux.HandleFunc("POST /new", h.handleTaskCreate)
	h.mux.HandleFunc("GET /{id}/edit", h.getTaskEditPage)
	h.mux.HandleFunc("POST /{id}/edit", h.handleTaskUpdate)
	h.mux.HandleFunc("PATCH /{id}/status", h.handleTaskMove)

	return h
}

var _ http.Handler = &Handler{}

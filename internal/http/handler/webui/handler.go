package webui

import (
	"net/http"
	"strings"
	"time"

	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/http/handler/events"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/dashboard"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/distribuicao"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/mesa"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/relatorio"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/task"
	"github.com/gorilla/sessions"
)

type Handler struct {
	mux  *http.ServeMux
	desk *service.Desk
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	common.WithDesk(h.desk, h.mux).ServeHTTP(w, r)
}

func NewHandler(desk *service.Desk, reporter *service.Reporter, sessionStore sessions.Store, assessores []string) *Handler {
	h := &Handler{
		mux:  http.NewServeMux(),
		desk: desk,
	}

	flashes := common.NewFlashes(sessionStore)

	h.mux.HandleFunc("GET /{$}", h.redirectToMesa)
	mount(h.mux, "/mesa/", mesa.NewHandler(desk, flashes))
	mount(h.mux, "/distribuicao/", distribuicao.NewHandler(desk, flashes))
	mount(h.mux, "/dashboard/", dashboard.NewHandler(desk, flashes))
	mount(h.mux, "/relatorios/", relatorio.NewHandler(desk, reporter, flashes))
	mount(h.mux, "/tasks/", task.NewHandler(desk, flashes, assessores))
	h.mux.Handle("GET /events", events.NewHandler(desk, 30*time.Second))
	h.mux.HandleFunc("/", h.getNotFoundPage)

	return h
}

func (h *Handler) redirectToMesa(w http.ResponseWriter, r *http.Request) {
	redirectURL := commonComp.BaseURL(r.Context(), commonComp.WithPath("/mesa/"))
	http.Redirect(w, r, string(redirectURL), http.StatusFound)
}

func (h *Handler) getNotFoundPage(w http.ResponseWriter, r *http.Request) {
	common.HandleError(w, r, common.ErrPageNotFound)
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}

package api

import (
	"net/http"
	"time"

	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/http/handler/events"
)

type Handler struct {
	desk     *service.Desk
	reporter *service.Reporter
	mux      *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(desk *service.Desk, reporter *service.Reporter) *Handler {
	h := &Handler{
		desk:     desk,
		reporter: reporter,
		mux:      &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /tasks", h.listTasks)
	h.mux.HandleFunc("POST /tasks", h.createTask)
	h.mux.HandleFunc("GET /tasks/{taskID}", h.getTask)
	h.mux.HandleFunc("PUT /tasks/{taskID}", h.replaceTask)
	h.mux.HandleFunc("PATCH /tasks/{taskID}/status", h.moveTask)

	h.mux.HandleFunc("GET /board", h.getBoard)
	h.mux.HandleFunc("GET /assessors", h.getAssessors)
	h.mux.HandleFunc("GET /distribution/{type}", h.getDistribution)
	h.mux.HandleFunc("GET /dashboard", h.getDashboard)
	h.mux.HandleFunc("GET /dashboard/{procurador}/{metric}", h.getDetails)
	h.mux.HandleFunc("GET /reports", h.getReports)
	h.mux.HandleFunc("GET /reports/export", h.exportReport)

	h.mux.Handle("GET /events", events.NewHandler(desk, 30*time.Second))

	return h
}

var _ http.Handler = &Handler{}

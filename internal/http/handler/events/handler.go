// Package events streams the desk events to browsers and API clients as
// server-sent events.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/pkg/errors"
)

const defaultKeepAlive = 30 * time.Second

type Handler struct {
	desk      *service.Desk
	keepAlive time.Duration
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	events, cancel := h.desk.Listen()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	hello := service.Event{Kind: "hello", Version: h.desk.Version()}
	if err := writeEvent(w, hello); err != nil {
		slog.DebugContext(ctx, "could not write event", slogx.Error(errors.WithStack(err)))
		return
	}

	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}

			flusher.Flush()

		case evt, open := <-events:
			if !open {
				return
			}

			if err := writeEvent(w, evt); err != nil {
				slog.DebugContext(ctx, "could not write event", slogx.Error(errors.WithStack(err)))
				return
			}

			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, evt service.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return errors.WithStack(err)
	}

	if evt.ID != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", evt.ID); err != nil {
			return errors.WithStack(err)
		}
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Kind, data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewHandler(desk *service.Desk, keepAlive time.Duration) *Handler {
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}

	return &Handler{
		desk:      desk,
		keepAlive: keepAlive,
	}
}

var _ http.Handler = &Handler{}

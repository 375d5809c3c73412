package common

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common/component"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const flashSessionName = "procuradoria_flash"

func init() {
	gob.Register(component.Flash{})
}

// Flashes keeps the messages displayed once on the next rendered page.
type Flashes struct {
	store sessions.Store
}

func (f *Flashes) Add(w http.ResponseWriter, r *http.Request, level component.FlashLevel, message string) {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil {
		slog.WarnContext(r.Context(), "could not retrieve flash session", slogx.Error(errors.WithStack(err)))
	}

	session.AddFlash(component.Flash{Level: level, Message: message})

	if err := session.Save(r, w); err != nil {
		slog.ErrorContext(r.Context(), "could not save flash session", slogx.Error(errors.WithStack(err)))
	}
}

// Pop returns and clears the pending messages. It must be called before the
// response body is written.
func (f *Flashes) Pop(w http.ResponseWriter, r *http.Request) []component.Flash {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil {
		slog.WarnContext(r.Context(), "could not retrieve flash session", slogx.Error(errors.WithStack(err)))
	}

	values := session.Flashes()
	if len(values) == 0 {
		return nil
	}

	if err := session.Save(r, w); err != nil {
		slog.ErrorContext(r.Context(), "could not save flash session", slogx.Error(errors.WithStack(err)))
	}

	flashes := make([]component.Flash, 0, len(values))
	for _, v := range values {
		if flash, ok := v.(component.Flash); ok {
			flashes = append(flashes, flash)
		}
	}

	return flashes
}

func NewFlashes(store sessions.Store) *Flashes {
	return &Flashes{store: store}
}

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/pkg/errors"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// getQueryFilter returns the value of a filter parameter, "all" when absent.
func getQueryFilter(query url.Values, name string) string {
	value := query.Get(name)
	if value == "" {
		return view.All
	}

	return value
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, res any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(errors.WithStack(err)))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	message := http.StatusText(statusCode)

	switch {
	case errors.Is(err, port.ErrNotFound):
		statusCode = http.StatusNotFound
		message = http.StatusText(statusCode)
	case errors.Is(err, service.ErrInvalidTask), errors.Is(err, service.ErrInvalidStatus):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrExportUnavailable):
		statusCode = http.StatusServiceUnavailable
		message = "Não foi possível gerar o PDF."
	default:
		slog.ErrorContext(r.Context(), "could not handle request", slogx.Error(errors.WithStack(err)))
	}

	writeJSON(w, r, statusCode, ErrorResponse{Error: message})
}

package task

import (
	"encoding/json"
	"net/http"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/pkg/errors"
)

type moveRequest struct {
	Status model.Status `json:"status"`
}

// handleTaskMove receives the status changes of the board cards.
func (h *Handler) handleTaskMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	err := h.desk.MoveTask(r.Context(), model.TaskID(r.PathValue("id")), req.Status)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidStatus):
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	default:
		http.Error(w, "Erro ao atualizar status.", http.StatusInternalServerError)
	}
}

package task

import (
	"net/http"
	"slices"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/pkg/errors"
)

func (h *Handler) getTaskCreatePage(w http.ResponseWriter, r *http.Request) {
	task := model.Task{
		Type:             r.URL.Query().Get("type"),
		Status:           model.StatusTriage,
		DistributionDate: h.desk.Now().Format(model.DateLayout),
	}

	types := h.desk.Types()
	if !slices.Contains(types, task.Type) && len(types) > 0 {
		task.Type = types[0]
	}

	if roster := h.desk.Roster(); len(roster) > 0 {
		task.AssignedProcurador = roster[0]
	}

	h.renderTaskForm(w, r, task, "", http.StatusOK)
}

func (h *Handler) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	task, err := parseTaskForm(r, model.Task{})
	if err != nil {
		h.handleSaveError(w, r, task, errors.WithStack(err))
		return
	}

	created, err := h.desk.Save(ctx, task, h.desk.Now())
	if err != nil {
		h.handleSaveError(w, r, task, errors.WithStack(err))
		return
	}

	h.redirectAfterSave(w, r, created)
}

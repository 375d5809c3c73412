package task

import (
	"net/http"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

func (h *Handler) getTaskEditPage(w http.ResponseWriter, r *http.Request) {
	task, err := h.getTask(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.renderTaskForm(w, r, task, "", http.StatusOK)
}

func (h *Handler) handleTaskUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, err := h.getTask(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	task, err := parseTaskForm(r, existing)
	if err != nil {
		h.handleSaveError(w, r, task, errors.WithStack(err))
		return
	}

	saved, err := h.desk.Save(ctx, task, h.desk.Now())
	if err != nil {
		h.handleSaveError(w, r, task, errors.WithStack(err))
		return
	}

	h.redirectAfterSave(w, r, saved)
}

func (h *Handler) getTask(r *http.Request) (model.Task, error) {
	task, exists, err := h.desk.Get(r.Context(), model.TaskID(r.PathValue("id")))
	if err != nil {
		return model.Task{}, errors.WithStack(err)
	}

	if !exists {
		return model.Task{}, errors.WithStack(common.ErrTaskNotFound)
	}

	return task, nil
}

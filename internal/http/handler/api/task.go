package api

import (
	"encoding/json"
	"net/http"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/core/service"
	"github.com/pkg/errors"
)

type ListTasksResponse struct {
	Version uint64       `json:"version"`
	Tasks   []model.Task `json:"tasks"`
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, ListTasksResponse{
		Version: h.desk.Version(),
		Tasks:   h.desk.Tasks(),
	})
}

type TaskResponse struct {
	Task model.Task `json:"task"`
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID := model.TaskID(r.PathValue("taskID"))

	task, exists, err := h.desk.Get(ctx, taskID)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	if !exists {
		writeError(w, r, errors.WithStack(port.ErrNotFound))
		return
	}

	writeJSON(w, r, http.StatusOK, TaskResponse{Task: task})
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var task model.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, r, errors.Wrap(service.ErrInvalidTask, err.Error()))
		return
	}

	task.ID = ""

	created, err := h.desk.Save(ctx, task, h.desk.Now())
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, TaskResponse{Task: created})
}

func (h *Handler) replaceTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var task model.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, r, errors.Wrap(service.ErrInvalidTask, err.Error()))
		return
	}

	task.ID = model.TaskID(r.PathValue("taskID"))

	saved, err := h.desk.Save(ctx, task, h.desk.Now())
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, TaskResponse{Task: saved})
}

type MoveTaskRequest struct {
	Status model.Status `json:"status"`
}

func (h *Handler) moveTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MoveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.Wrap(service.ErrInvalidStatus, err.Error()))
		return
	}

	taskID := model.TaskID(r.PathValue("taskID"))

	if err := h.desk.MoveTask(ctx, taskID, req.Status); err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

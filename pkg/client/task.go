package client

import (
	"context"
	"net/http"
	"time"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, uint64, error) {
	var res api.ListTasksResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/tasks", nil, nil, &res); err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return res.Tasks, res.Version, nil
}

func (c *Client) GetTask(ctx context.Context, id model.TaskID) (*model.Task, error) {
	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodGet, "/tasks/"+string(id), nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Task, nil
}

func (c *Client) CreateTask(ctx context.Context, task model.Task) (*model.Task, error) {
	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/tasks", nil, task, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Task, nil
}

func (c *Client) ReplaceTask(ctx context.Context, task model.Task) (*model.Task, error) {
	var res api.TaskResponse
	if err := c.jsonRequest(ctx, http.MethodPut, "/tasks/"+string(task.ID), nil, task, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Task, nil
}

// MoveTask changes the status of a task the way a board card drop does.
func (c *Client) MoveTask(ctx context.Context, id model.TaskID, status model.Status) error {
	req := api.MoveTaskRequest{Status: status}
	if err := c.jsonRequest(ctx, http.MethodPatch, "/tasks/"+string(id)+"/status", nil, req, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

type WaitForOptions struct {
	PollInterval time.Duration
}

type WaitForOptionFunc func(opts *WaitForOptions)

func WithWaitForPollInterval(interval time.Duration) WaitForOptionFunc {
	return func(opts *WaitForOptions) {
		opts.PollInterval = interval
	}
}

func NewWaitForOptions(funcs ...WaitForOptionFunc) *WaitForOptions {
	opts := &WaitForOptions{
		PollInterval: time.Second,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WaitForStatus polls the task collection until the task reaches status or
// ctx is done. The collection lags behind the writes acknowledged by the
// server.
func (c *Client) WaitForStatus(ctx context.Context, id model.TaskID, status model.Status, funcs ...WaitForOptionFunc) (*model.Task, error) {
	opts := NewWaitForOptions(funcs...)

	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	for {
		tasks, _, err := c.ListTasks(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		for _, t := range tasks {
			if t.ID == id && t.Status == status {
				return &t, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-ticker.C:
		}
	}
}

package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/feed"
	"github.com/pkg/errors"
)

type TaskStore struct {
	mutex sync.RWMutex
	order []model.TaskID
	tasks map[model.TaskID]model.Task
	feed  *feed.Broadcaster[[]model.Task]
}

// Subscribe implements port.TaskStore.
func (s *TaskStore) Subscribe(ctx context.Context, fn port.SnapshotFunc) (port.Subscription, error) {
	unsubscribe := s.feed.Subscribe(ctx, func(tasks []model.Task) {
		fn(slices.Clone(tasks))
	})

	return port.SubscriptionFunc(unsubscribe), nil
}

// GetByID implements port.TaskStore.
func (s *TaskStore) GetByID(ctx context.Context, id model.TaskID) (model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return model.Task{}, errors.WithStack(port.ErrNotFound)
	}

	return task, nil
}

// Create implements port.TaskStore.
func (s *TaskStore) Create(ctx context.Context, task model.Task) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.tasks[task.ID]; exists {
		return errors.Wrapf(port.ErrAlreadyExists, "task '%s'", task.ID)
	}

	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	s.publish()

	return nil
}

// Replace implements port.TaskStore.
func (s *TaskStore) Replace(ctx context.Context, task model.Task) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.tasks[task.ID]; !exists {
		return errors.Wrapf(port.ErrNotFound, "task '%s'", task.ID)
	}

	s.tasks[task.ID] = task

	s.publish()

	return nil
}

// Patch implements port.TaskStore.
func (s *TaskStore) Patch(ctx context.Context, id model.TaskID, patch port.TaskPatch) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return errors.Wrapf(port.ErrNotFound, "task '%s'", id)
	}

	if patch.Status != nil {
		task.Status = *patch.Status
	}

	s.tasks[id] = task

	s.publish()

	return nil
}

// publish must be called with the write lock held.
func (s *TaskStore) publish() {
	snapshot := make([]model.Task, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, s.tasks[id])
	}

	s.feed.Publish(snapshot)
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		order: make([]model.TaskID, 0),
		tasks: make(map[model.TaskID]model.Task),
		feed:  feed.NewBroadcaster(make([]model.Task, 0)),
	}
}

var _ port.TaskStore = &TaskStore{}

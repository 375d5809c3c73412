package cache

import (
	"context"
	"sync"
	"time"

	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TaskStore caches task lookups of its backend. Entries are dropped on
// every write going through the store and the whole cache is purged each
// time the backend publishes a snapshot.
type TaskStore struct {
	backend port.TaskStore
	tasks   *expirable.LRU[model.TaskID, model.Task]

	mutex sync.Mutex
	// generations is bumped before and after each write of a task, so that a
	// lookup overlapping a write never caches what it read.
	generations map[model.TaskID]uint64
}

// Subscribe implements [port.TaskStore].
func (s *TaskStore) Subscribe(ctx context.Context, fn port.SnapshotFunc) (port.Subscription, error) {
	return s.backend.Subscribe(ctx, func(tasks []model.Task) {
		s.tasks.Purge()
		fn(tasks)
	})
}

// GetByID implements [port.TaskStore].
func (s *TaskStore) GetByID(ctx context.Context, id model.TaskID) (model.Task, error) {
	if task, exists := s.tasks.Get(id); exists {
		return task, nil
	}

	generation := s.generation(id)

	task, err := s.backend.GetByID(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	s.mutex.Lock()
	if s.generations[id] == generation {
		s.tasks.Add(id, task)
	}
	s.mutex.Unlock()

	return task, nil
}

// Create implements [port.TaskStore].
func (s *TaskStore) Create(ctx context.Context, task model.Task) error {
	s.beginWrite(task.ID)
	defer s.endWrite(task.ID)

	return s.backend.Create(ctx, task)
}

// Replace implements [port.TaskStore].
func (s *TaskStore) Replace(ctx context.Context, task model.Task) error {
	s.beginWrite(task.ID)
	defer s.endWrite(task.ID)

	return s.backend.Replace(ctx, task)
}

// Patch implements [port.TaskStore].
func (s *TaskStore) Patch(ctx context.Context, id model.TaskID, patch port.TaskPatch) error {
	s.beginWrite(id)
	defer s.endWrite(id)

	return s.backend.Patch(ctx, id, patch)
}

func (s *TaskStore) generation(id model.TaskID) uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.generations[id]
}

func (s *TaskStore) beginWrite(id model.TaskID) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.generations[id]++
	s.tasks.Remove(id)
}

func (s *TaskStore) endWrite(id model.TaskID) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.generations[id]++
	s.tasks.Remove(id)
}

// Len returns the number of cached tasks.
func (s *TaskStore) Len() int {
	return s.tasks.Len()
}

func NewTaskStore(backend port.TaskStore, size int, ttl time.Duration) *TaskStore {
	return &TaskStore{
		backend:     backend,
		tasks:       expirable.NewLRU[model.TaskID, model.Task](size, nil, ttl),
		generations: make(map[model.TaskID]uint64),
	}
}

var _ port.TaskStore = &TaskStore{}

package gorm

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/feed"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TaskStore struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)

	// refreshMutex orders snapshot reloads so that the feed never goes back
	// to an older state.
	refreshMutex sync.Mutex
	loaded       bool
	feed         *feed.Broadcaster[[]model.Task]
}

// Subscribe implements port.TaskStore.
func (s *TaskStore) Subscribe(ctx context.Context, fn port.SnapshotFunc) (port.Subscription, error) {
	s.refreshMutex.Lock()
	loaded := s.loaded
	s.refreshMutex.Unlock()

	if !loaded {
		if err := s.refresh(ctx); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	unsubscribe := s.feed.Subscribe(ctx, func(tasks []model.Task) {
		fn(slices.Clone(tasks))
	})

	return port.SubscriptionFunc(unsubscribe), nil
}

// GetByID implements port.TaskStore.
func (s *TaskStore) GetByID(ctx context.Context, id model.TaskID) (model.Task, error) {
	var task Task

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&task, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return model.Task{}, errors.WithStack(err)
	}

	return task.toModel(), nil
}

// Create implements port.TaskStore.
func (s *TaskStore) Create(ctx context.Context, task model.Task) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var count int64
		if err := db.Model(&Task{}).Where("id = ?", string(task.ID)).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}

		if count > 0 {
			return errors.Wrapf(port.ErrAlreadyExists, "task '%s'", task.ID)
		}

		if err := db.Create(fromTask(task)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	s.refreshAfterWrite(ctx)

	return nil
}

// Replace implements port.TaskStore.
func (s *TaskStore) Replace(ctx context.Context, task model.Task) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		row := fromTask(task)

		res := db.Model(&Task{}).Where("id = ?", row.ID).Updates(row.columns())
		if res.Error != nil {
			return errors.WithStack(res.Error)
		}

		if res.RowsAffected == 0 {
			return errors.Wrapf(port.ErrNotFound, "task '%s'", task.ID)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	s.refreshAfterWrite(ctx)

	return nil
}

// Patch implements port.TaskStore.
func (s *TaskStore) Patch(ctx context.Context, id model.TaskID, patch port.TaskPatch) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var count int64
		if err := db.Model(&Task{}).Where("id = ?", string(id)).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}

		if count == 0 {
			return errors.Wrapf(port.ErrNotFound, "task '%s'", id)
		}

		updates := map[string]any{}

		if patch.Status != nil {
			updates["status"] = string(*patch.Status)
		}

		if len(updates) == 0 {
			return nil
		}

		if err := db.Model(&Task{}).Where("id = ?", string(id)).Updates(updates).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	s.refreshAfterWrite(ctx)

	return nil
}

// refreshAfterWrite publishes the new collection. The write itself is
// committed at this point: a failed reload is logged and will be caught up
// by the next one.
func (s *TaskStore) refreshAfterWrite(ctx context.Context) {
	if err := s.refresh(ctx); err != nil {
		slog.ErrorContext(ctx, "could not reload tasks after write", slogx.Error(errors.WithStack(err)))
	}
}

func (s *TaskStore) refresh(ctx context.Context) error {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	var rows []*Task

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Order("created_at asc, id asc").Find(&rows).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.toModel())
	}

	s.loaded = true
	s.feed.Publish(tasks)

	return nil
}

func (s *TaskStore) withRetry(ctx context.Context, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := 500 * time.Millisecond
	maxRetries := 10
	retries := 0

	for {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := fn(ctx, tx); err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
		if err != nil {
			if retries >= maxRetries {
				return errors.WithStack(err)
			}

			var sqliteErr *sqlite3.Error
			if errors.As(err, &sqliteErr) {
				if !slices.Contains(codes, sqliteErr.Code()) {
					return errors.WithStack(err)
				}

				slog.DebugContext(ctx, "transaction failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slogx.Error(errors.WithStack(err)))

				retries++

				select {
				case <-ctx.Done():
					return errors.WithStack(ctx.Err())
				case <-time.After(backoff):
				}

				backoff *= 2
				continue
			}

			return errors.WithStack(err)
		}

		return nil
	}
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{
		getDatabase: createGetDatabase(db),
		feed:        feed.NewBroadcaster(make([]model.Task, 0)),
	}
}

var _ port.TaskStore = &TaskStore{}

func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			models := []any{
				&Task{},
			}

			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db, nil
	}
}

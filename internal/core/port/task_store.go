package port

import (
	"context"

	"github.com/bornholm/procuradoria/internal/core/model"
)

// SnapshotFunc receives the complete task collection each time the store
// changes, starting with its current content.
type SnapshotFunc func(tasks []model.Task)

type Subscription interface {
	Unsubscribe()
}

type SubscriptionFunc func()

func (f SubscriptionFunc) Unsubscribe() {
	f()
}

type TaskPatch struct {
	Status *model.Status
}

type TaskStore interface {
	// Subscribe registers fn as a snapshot listener until the returned
	// subscription is canceled.
	Subscribe(ctx context.Context, fn SnapshotFunc) (Subscription, error)
	GetByID(ctx context.Context, id model.TaskID) (model.Task, error)
	Create(ctx context.Context, task model.Task) error
	Replace(ctx context.Context, task model.Task) error
	Patch(ctx context.Context, id model.TaskID, patch TaskPatch) error
}

package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/procuradoria/internal/core/model"
	"github.com/bornholm/procuradoria/internal/core/port"
	"github.com/bornholm/procuradoria/internal/core/view"
	"github.com/bornholm/procuradoria/internal/metrics"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

const listenerBufferSize = 32

type DeskOptions struct {
	Roster   []string
	Types    []string
	Location *time.Location
	Clock    func() time.Time
}

type DeskOptionFunc func(opts *DeskOptions)

func WithDeskRoster(roster ...string) DeskOptionFunc {
	return func(opts *DeskOptions) {
		opts.Roster = roster
	}
}

func WithDeskTypes(types ...string) DeskOptionFunc {
	return func(opts *DeskOptions) {
		opts.Types = types
	}
}

func WithDeskLocation(location *time.Location) DeskOptionFunc {
	return func(opts *DeskOptions) {
		opts.Location = location
	}
}

func WithDeskClock(clock func() time.Time) DeskOptionFunc {
	return func(opts *DeskOptions) {
		opts.Clock = clock
	}
}

func NewDeskOptions(funcs ...DeskOptionFunc) *DeskOptions {
	opts := &DeskOptions{
		Roster:   []string{model.LegacyProcurador, "Caterine", "Luís Cabral"},
		Types:    []string{model.DefaultType, "Administrativo"},
		Location: time.Local,
		Clock:    time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// Desk holds the task collection shared by every screen. Its content is
// replaced wholesale by each store snapshot and is always normalized and
// sorted.
type Desk struct {
	store port.TaskStore

	roster   []string
	types    []string
	location *time.Location
	clock    func() time.Time

	mutex   sync.RWMutex
	tasks   []model.Task
	version uint64

	listenersMutex sync.RWMutex
	listeners      map[xid.ID]chan Event
}

// Run keeps the desk in sync with the store until ctx is done.
func (d *Desk) Run(ctx context.Context) error {
	sub, err := d.store.Subscribe(ctx, d.apply)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("subscribe").Inc()
		return errors.Wrap(err, "could not subscribe to task store")
	}

	defer sub.Unsubscribe()

	<-ctx.Done()

	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (d *Desk) apply(snapshot []model.Task) {
	tasks := make([]model.Task, 0, len(snapshot))
	for _, t := range snapshot {
		tasks = append(tasks, model.Normalize(t))
	}

	tasks = model.SortTasks(tasks)

	d.mutex.Lock()
	d.tasks = tasks
	d.version++
	version := d.version
	d.mutex.Unlock()

	metrics.AppliedSnapshots.Inc()
	d.updateMetrics(tasks)

	d.emit(Event{Kind: EventSnapshot, Version: version})
}

func (d *Desk) updateMetrics(tasks []model.Task) {
	metrics.Tasks.Reset()

	counts := make(map[model.Status]int)
	for _, t := range tasks {
		counts[t.Status]++
	}

	for status, count := range counts {
		metrics.Tasks.WithLabelValues(string(status)).Set(float64(count))
	}

	metrics.OverdueTasks.Reset()

	dashboard := view.Dashboard(tasks, d.roster, d.Now())
	for _, a := range dashboard.Attorneys {
		metrics.OverdueTasks.WithLabelValues(a.Procurador).Set(float64(a.Overdue))
	}
}

// Tasks returns a copy of the current collection.
func (d *Desk) Tasks() []model.Task {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return slices.Clone(d.tasks)
}

func (d *Desk) Version() uint64 {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.version
}

func (d *Desk) Roster() []string {
	return slices.Clone(d.roster)
}

func (d *Desk) Types() []string {
	return slices.Clone(d.types)
}

// Now returns the current time in the office location.
func (d *Desk) Now() time.Time {
	return d.clock().In(d.location)
}

// Get fetches a task from the store. A missing task is not an error.
func (d *Desk) Get(ctx context.Context, id model.TaskID) (model.Task, bool, error) {
	task, err := d.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return model.Task{}, false, nil
		}

		metrics.StoreErrors.WithLabelValues("get").Inc()

		return model.Task{}, false, errors.WithStack(err)
	}

	return model.Normalize(task), true, nil
}

// Save creates the task when it has no id yet, or replaces the stored one.
func (d *Desk) Save(ctx context.Context, task model.Task, now time.Time) (model.Task, error) {
	if strings.TrimSpace(task.AttusNumber) == "" {
		return model.Task{}, errors.Wrap(ErrInvalidTask, "attus number is required")
	}

	if task.ID == "" {
		task.ID = model.NewTaskID(now)
		task.Status = model.StatusTriage

		if task.Responsible == "" {
			task.Responsible = model.Unassigned
		}

		if task.DistributionDate == "" {
			task.DistributionDate = now.In(d.location).Format(model.DateLayout)
		}

		if err := d.store.Create(ctx, task); err != nil {
			return model.Task{}, d.storeError(ctx, "create", task.ID, "Erro ao salvar o processo.", err)
		}

		slog.InfoContext(ctx, "task created", slog.String("taskID", string(task.ID)))

		return task, nil
	}

	if err := d.store.Replace(ctx, task); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return model.Task{}, errors.WithStack(err)
		}

		return model.Task{}, d.storeError(ctx, "replace", task.ID, "Erro ao salvar o processo.", err)
	}

	slog.InfoContext(ctx, "task updated", slog.String("taskID", string(task.ID)))

	return task, nil
}

// MoveTask changes the status of a task. The change is applied to the desk
// before the store acknowledges it and reverted if the store rejects it.
func (d *Desk) MoveTask(ctx context.Context, id model.TaskID, status model.Status) error {
	if !status.Valid() {
		return errors.Wrapf(ErrInvalidStatus, "unknown status '%s'", status)
	}

	d.mutex.Lock()
	idx := slices.IndexFunc(d.tasks, func(t model.Task) bool { return t.ID == id })
	if idx == -1 {
		d.mutex.Unlock()
		return errors.Wrapf(port.ErrNotFound, "task '%s'", id)
	}

	previous := d.tasks[idx].Status
	if previous == status {
		d.mutex.Unlock()
		return nil
	}

	d.tasks[idx].Status = status
	d.version++
	version := d.version
	d.mutex.Unlock()

	d.emit(Event{Kind: EventSnapshot, Version: version, TaskID: id})

	if err := d.store.Patch(ctx, id, port.TaskPatch{Status: &status}); err != nil {
		metrics.StatusMoves.WithLabelValues("failed").Inc()

		d.rollback(id, status, previous)

		return d.storeError(ctx, "patch", id, "Erro ao atualizar status.", err)
	}

	metrics.StatusMoves.WithLabelValues("succeeded").Inc()

	return nil
}

// rollback restores the previous status of a task unless it was changed
// again in the meantime.
func (d *Desk) rollback(id model.TaskID, optimistic model.Status, previous model.Status) {
	d.mutex.Lock()

	idx := slices.IndexFunc(d.tasks, func(t model.Task) bool { return t.ID == id })
	if idx == -1 || d.tasks[idx].Status != optimistic {
		d.mutex.Unlock()
		return
	}

	d.tasks[idx].Status = previous
	d.version++
	version := d.version
	d.mutex.Unlock()

	d.emit(Event{Kind: EventSnapshot, Version: version, TaskID: id})
}

func (d *Desk) storeError(ctx context.Context, operation string, id model.TaskID, message string, err error) error {
	err = errors.WithStack(err)

	metrics.StoreErrors.WithLabelValues(operation).Inc()

	slog.ErrorContext(ctx, "task store operation failed",
		slog.String("operation", operation),
		slog.String("taskID", string(id)),
		slogx.Error(err),
	)

	d.Notify(LevelError, message, id)

	return err
}

// Notify broadcasts a message to the listeners.
func (d *Desk) Notify(level Level, message string, id model.TaskID) {
	d.emit(Event{
		Kind:    EventNotification,
		Version: d.Version(),
		Level:   level,
		Message: message,
		TaskID:  id,
	})
}

// Listen returns a channel receiving the desk events. Events are dropped
// for listeners that do not keep up.
func (d *Desk) Listen() (<-chan Event, func()) {
	id := xid.New()
	ch := make(chan Event, listenerBufferSize)

	d.listenersMutex.Lock()
	d.listeners[id] = ch
	d.listenersMutex.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			d.listenersMutex.Lock()
			delete(d.listeners, id)
			close(ch)
			d.listenersMutex.Unlock()
		})
	}

	return ch, cancel
}

func (d *Desk) emit(evt Event) {
	evt.ID = xid.New().String()

	d.listenersMutex.RLock()
	defer d.listenersMutex.RUnlock()

	for id, ch := range d.listeners {
		select {
		case ch <- evt:
		default:
			slog.Debug("dropping event for slow listener", slog.String("listenerID", id.String()), slog.String("kind", string(evt.Kind)))
		}
	}
}

func NewDesk(store port.TaskStore, funcs ...DeskOptionFunc) *Desk {
	opts := NewDeskOptions(funcs...)

	return &Desk{
		store:     store,
		roster:    opts.Roster,
		types:     opts.Types,
		location:  opts.Location,
		clock:     opts.Clock,
		tasks:     make([]model.Task, 0),
		listeners: make(map[xid.ID]chan Event),
	}
}

// Package task provides the task domain logic for taskdeck: id assignment,
// ordering, completion, and deletion on top of the persistence layer.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/taskdeck/internal/clock"
	"github.com/taskdeck/taskdeck/internal/domain"
	taskdeckerrors "github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/store"
)

// Manager enforces task domain invariants around the store:
// ids are assigned from the stored counter, increase monotonically, and
// are never reused, even after deletion.
type Manager struct {
	store store.Store
	clk   clock.Clock
}

// NewManager creates a Manager over the given store.
// A nil clk defaults to the system clock.
func NewManager(s store.Store, clk clock.Clock) *Manager {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Manager{store: s, clk: clk}
}

// Add creates a new task with the given title.
//
// The title is trimmed of surrounding whitespace; an empty result wraps
// errors.ErrEmptyTitle and leaves the store untouched. The new task gets
// the document's next_id and the current UTC timestamp. The document is
// persisted before the task is returned; if the save fails, the in-memory
// counter advance is discarded and the next call recomputes from disk.
func (m *Manager) Add(ctx context.Context, title string) (domain.Task, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return domain.Task{}, fmt.Errorf("failed to add task: %w", taskdeckerrors.ErrEmptyTitle)
	}

	release, err := m.store.Lock(ctx)
	if err != nil {
		return domain.Task{}, taskdeckerrors.Wrap(err, "failed to add task")
	}
	defer release()

	doc, err := m.store.Load(ctx)
	if err != nil {
		return domain.Task{}, taskdeckerrors.Wrap(err, "failed to add task")
	}

	t := domain.Task{
		ID:        doc.NextID,
		Title:     trimmed,
		CreatedAt: m.clk.Now().UTC().Truncate(time.Second),
	}
	doc.Tasks = append(doc.Tasks, t)
	doc.NextID = t.ID + 1

	if err := m.store.Save(ctx, doc); err != nil {
		return domain.Task{}, taskdeckerrors.Wrap(err, "failed to add task")
	}

	zerolog.Ctx(ctx).Debug().Int64("task_id", t.ID).Str("title", t.Title).Msg("task added")
	return t, nil
}

// List returns all tasks in stored (insertion) order. Read-only; no save.
func (m *Manager) List(ctx context.Context) ([]domain.Task, error) {
	doc, err := m.store.Load(ctx)
	if err != nil {
		return nil, taskdeckerrors.Wrap(err, "failed to list tasks")
	}
	return doc.Tasks, nil
}

// Complete marks the task with the given id as done, recording the
// completion time. Completing an already-done task succeeds without a
// save, so repeated invocations are safe. Returns errors.ErrTaskNotFound
// if the id does not exist.
func (m *Manager) Complete(ctx context.Context, id int64) (domain.Task, error) {
	release, err := m.store.Lock(ctx)
	if err != nil {
		return domain.Task{}, taskdeckerrors.Wrapf(err, "failed to complete task %d", id)
	}
	defer release()

	doc, err := m.store.Load(ctx)
	if err != nil {
		return domain.Task{}, taskdeckerrors.Wrapf(err, "failed to complete task %d", id)
	}

	i := doc.Find(id)
	if i < 0 {
		return domain.Task{}, fmt.Errorf("failed to complete task %d: %w", id, taskdeckerrors.ErrTaskNotFound)
	}
	if doc.Tasks[i].Done {
		return doc.Tasks[i], nil
	}

	now := m.clk.Now().UTC().Truncate(time.Second)
	doc.Tasks[i].Done = true
	doc.Tasks[i].CompletedAt = &now

	if err := m.store.Save(ctx, doc); err != nil {
		return domain.Task{}, taskdeckerrors.Wrapf(err, "failed to complete task %d", id)
	}

	zerolog.Ctx(ctx).Debug().Int64("task_id", id).Msg("task completed")
	return doc.Tasks[i], nil
}

// Delete removes the task with the given id. An absent id wraps
// errors.ErrTaskNotFound — a normal, reportable condition, not a crash.
// next_id is left unchanged: ids are never reused after deletion.
func (m *Manager) Delete(ctx context.Context, id int64) error {
	release, err := m.store.Lock(ctx)
	if err != nil {
		return taskdeckerrors.Wrapf(err, "failed to delete task %d", id)
	}
	defer release()

	doc, err := m.store.Load(ctx)
	if err != nil {
		return taskdeckerrors.Wrapf(err, "failed to delete task %d", id)
	}

	i := doc.Find(id)
	if i < 0 {
		return fmt.Errorf("failed to delete task %d: %w", id, taskdeckerrors.ErrTaskNotFound)
	}
	doc.Tasks = append(doc.Tasks[:i], doc.Tasks[i+1:]...)

	if err := m.store.Save(ctx, doc); err != nil {
		return taskdeckerrors.Wrapf(err, "failed to delete task %d", id)
	}

	zerolog.Ctx(ctx).Debug().Int64("task_id", id).Msg("task deleted")
	return nil
}

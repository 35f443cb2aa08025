// Package domain provides shared domain types for taskdeck.
// These types are used across all internal packages to ensure consistent
// data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case.
package domain

import (
	"fmt"
	"time"

	taskdeckerrors "github.com/taskdeck/taskdeck/internal/errors"
)

// Task represents a single task in the store file.
// Title and CreatedAt are write-once: they are set by Manager.Add and
// never modified afterwards.
//
// Example JSON representation:
//
//	{
//	    "id": 1,
//	    "title": "Buy milk",
//	    "created_at": "2026-08-26T10:00:00Z",
//	    "done": false
//	}
type Task struct {
	// ID is the unique, immutable identifier for the task.
	// IDs are positive integers assigned monotonically and never reused,
	// even after deletion.
	ID int64 `json:"id"`

	// Title is the task description, trimmed of surrounding whitespace.
	Title string `json:"title"`

	// CreatedAt is when the task was created, in UTC.
	// Serialized as RFC 3339 with a trailing "Z".
	CreatedAt time.Time `json:"created_at"`

	// Done reports whether the task has been completed.
	Done bool `json:"done"`

	// CompletedAt is when the task was marked done (nil if not yet complete).
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TaskFile is the persisted store document.
type TaskFile struct {
	// NextID is the id to assign to the next created task.
	// Invariant: strictly greater than every stored task id, and >= 1.
	NextID int64 `json:"next_id"`

	// Tasks is the ordered list of tasks, insertion order preserved
	// across save/load cycles.
	Tasks []Task `json:"tasks"`
}

// NewTaskFile returns the default document used when no store file exists.
func NewTaskFile() *TaskFile {
	return &TaskFile{
		NextID: 1,
		Tasks:  []Task{},
	}
}

// Validate checks the document against the store invariants:
//
//  1. NextID >= 1 and strictly greater than every stored task id.
//  2. No two tasks share an id; all ids are positive.
//  3. Every task has a non-empty title and a set creation timestamp.
//
// The returned error wraps errors.ErrStoreCorrupt and names the violated
// invariant so callers can surface it for manual inspection.
func (f *TaskFile) Validate() error {
	if f.NextID < 1 {
		return fmt.Errorf("next_id %d must be >= 1: %w", f.NextID, taskdeckerrors.ErrStoreCorrupt)
	}

	seen := make(map[int64]struct{}, len(f.Tasks))
	for i, t := range f.Tasks {
		if t.ID <= 0 {
			return fmt.Errorf("task at index %d has non-positive id %d: %w", i, t.ID, taskdeckerrors.ErrStoreCorrupt)
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("duplicate task id %d: %w", t.ID, taskdeckerrors.ErrStoreCorrupt)
		}
		seen[t.ID] = struct{}{}

		if t.Title == "" {
			return fmt.Errorf("task %d has an empty title: %w", t.ID, taskdeckerrors.ErrStoreCorrupt)
		}
		if t.CreatedAt.IsZero() {
			return fmt.Errorf("task %d has no creation timestamp: %w", t.ID, taskdeckerrors.ErrStoreCorrupt)
		}
		if t.ID >= f.NextID {
			return fmt.Errorf("task id %d is not below next_id %d: %w", t.ID, f.NextID, taskdeckerrors.ErrStoreCorrupt)
		}
	}

	return nil
}

// Find returns the index of the task with the given id, or -1 if absent.
// IDs are unique, so at most one task can match.
func (f *TaskFile) Find(id int64) int {
	for i, t := range f.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

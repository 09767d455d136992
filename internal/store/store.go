// Package store owns the authoritative task collection.
package store

import (
	"context"

	"todos/internal/task"
)

// Store is the authoritative holder of task records. All mutation of the
// durable collection goes through it.
type Store interface {
	// List returns all tasks. No ordering is part of the contract.
	List(ctx context.Context) ([]task.Task, error)

	// Create validates the title, assigns a fresh unique id and persists the
	// task with completed=false. Returns *task.ValidationError for an empty
	// or whitespace-only title, without touching the collection.
	Create(ctx context.Context, title string) (task.Task, error)

	// Replace overwrites the whole record with the given id: title and
	// completed are both replaced, never merged. Callers send the complete
	// desired state. Returns *task.NotFoundError if the id is unknown.
	Replace(ctx context.Context, id int64, title string, completed bool) (task.Task, error)

	// Delete removes the record if present. Deleting an absent id is a
	// success: the end state is the same either way.
	Delete(ctx context.Context, id int64) error
}

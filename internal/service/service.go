// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"

	"todos/internal/task"
)

// Service defines the interface for task backend operations. All server calls
// go through this interface. Commands never build HTTP requests directly.
type Service interface {
	// ListTasks returns all tasks in server order.
	ListTasks(ctx context.Context) ([]task.Task, error)

	// CreateTask creates a task with the given title and returns it as
	// accepted by the server, including its assigned id.
	CreateTask(ctx context.Context, title string) (task.Task, error)

	// ReplaceTask overwrites the whole record with the given id and returns
	// the state the server actually persisted.
	ReplaceTask(ctx context.Context, id int64, title string, completed bool) (task.Task, error)

	// DeleteTask deletes a task. Deleting an id that is already gone is a
	// success.
	DeleteTask(ctx context.Context, id int64) error
}

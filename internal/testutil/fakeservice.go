// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strings"
	"sync"

	"todos/internal/task"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.Mutex
	nextID int64
	tasks  []task.Task

	// Error injection for testing
	ListTasksErr   error
	CreateTaskErr  error
	ReplaceTaskErr error
	DeleteTaskErr  error

	// ReplaceHook, when set, runs after a replace has been applied
	// server-side but before ReplaceTask returns. Tests use it to interleave
	// another action while a replace is in flight.
	ReplaceHook func()

	// Call counters
	CreateCalls  int
	ReplaceCalls int
	DeleteCalls  int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask seeds a task directly into the fake's collection and returns it.
func (f *FakeService) AddTask(title string, completed bool) task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := task.Task{ID: f.nextID, Title: title, Completed: completed}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t
}

// ServerTasks returns a copy of the fake's collection.
func (f *FakeService) ServerTasks() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]task.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.ServerTasks(), nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title string) (task.Task, error) {
	f.mu.Lock()
	f.CreateCalls++
	f.mu.Unlock()

	if f.CreateTaskErr != nil {
		return task.Task{}, f.CreateTaskErr
	}
	if strings.TrimSpace(title) == "" {
		return task.Task{}, &task.ValidationError{Reason: "title must not be empty"}
	}
	return f.AddTask(title, false), nil
}

// ReplaceTask implements service.Service.
func (f *FakeService) ReplaceTask(ctx context.Context, id int64, title string, completed bool) (task.Task, error) {
	f.mu.Lock()
	f.ReplaceCalls++
	f.mu.Unlock()

	if f.ReplaceTaskErr != nil {
		return task.Task{}, f.ReplaceTaskErr
	}

	f.mu.Lock()
	replaced := task.Task{ID: id, Title: title, Completed: completed}
	found := false
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i] = replaced
			found = true
			break
		}
	}
	f.mu.Unlock()

	if !found {
		return task.Task{}, &task.NotFoundError{ID: id}
	}
	if f.ReplaceHook != nil {
		f.ReplaceHook()
	}
	return replaced, nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++

	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}

	// Idempotent: removing an absent id is fine.
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			break
		}
	}
	return nil
}

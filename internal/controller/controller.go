// Package controller holds the client's local view of the task list and
// keeps it consistent with the server across add, toggle and delete actions.
package controller

import (
	"context"
	"strings"

	"todos/internal/service"
	"todos/internal/task"
)

// Controller owns the local task list (insertion order is display order).
// Local state changes only at the point where a server call settles: adds are
// not optimistic, deletes are confirmed before removal, and a toggle replaces
// the local entry with whatever the server actually persisted. A failed call
// leaves local state exactly as it was and returns the error.
//
// A Controller is single-writer: all methods must be called from the same
// goroutine. Actions issued back to back for the same id are not serialized
// against each other; whichever response settles last wins in the local list,
// so a late toggle response can re-insert a task deleted in between.
type Controller struct {
	svc    service.Service
	tasks  []task.Task
	loaded bool
}

// New creates a controller with an empty local list. Call Refresh to populate
// it; until then Loaded reports false and the list should be treated as still
// loading, not as empty.
func New(svc service.Service) *Controller {
	return &Controller{svc: svc}
}

// Refresh replaces the local list with the server's.
func (c *Controller) Refresh(ctx context.Context) error {
	tasks, err := c.svc.ListTasks(ctx)
	if err != nil {
		return err
	}
	c.tasks = tasks
	c.loaded = true
	return nil
}

// Loaded reports whether an initial fetch has settled.
func (c *Controller) Loaded() bool {
	return c.loaded
}

// Tasks returns a copy of the local list in display order.
func (c *Controller) Tasks() []task.Task {
	out := make([]task.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Find returns the local task with the given id.
func (c *Controller) Find(id int64) (task.Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// Add submits the draft and appends the server-confirmed task to the list.
// The draft itself is never shown: an entry without an id could not be
// toggled or deleted deterministically. On failure the list is untouched.
func (c *Controller) Add(ctx context.Context, draft task.Draft) (task.Task, error) {
	// The server is the enforcement point of record; this check just saves
	// the round trip.
	if strings.TrimSpace(draft.Title) == "" {
		return task.Task{}, &task.ValidationError{Reason: "title must not be empty"}
	}
	created, err := c.svc.CreateTask(ctx, draft.Title)
	if err != nil {
		return task.Task{}, err
	}
	c.tasks = append(c.tasks, created)
	return created, nil
}

// Toggle sends the full current snapshot of the task with completed inverted
// and replaces the local entry wholesale with the server's response, which
// may differ from what was requested. An id that is no longer in the local
// list is a no-op with found=false: the caller held a stale reference, which
// is not an error.
func (c *Controller) Toggle(ctx context.Context, id int64) (task.Task, bool, error) {
	current, ok := c.Find(id)
	if !ok {
		return task.Task{}, false, nil
	}
	replaced, err := c.svc.ReplaceTask(ctx, id, current.Title, !current.Completed)
	if err != nil {
		return task.Task{}, true, err
	}
	c.replaceLocal(id, replaced)
	return replaced, true, nil
}

// Delete removes the task on the server first and drops the local entry only
// once the server confirms. Removing it up front could hide a task that still
// exists server-side if the delete then fails.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if err := c.svc.DeleteTask(ctx, id); err != nil {
		return err
	}
	c.removeLocal(id)
	return nil
}

func (c *Controller) replaceLocal(id int64, t task.Task) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i] = t
			return
		}
	}
	// The entry disappeared while the call was in flight, for example a
	// delete that settled first. The later response still wins.
	c.tasks = append(c.tasks, t)
}

func (c *Controller) removeLocal(id int64) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return
		}
	}
}

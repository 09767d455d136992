// Package task defines the task data model shared by the server and client.
package task

// Task is a task record accepted by the store. The id is assigned by the
// server on creation, never changes afterwards, and is never reused once the
// task is deleted.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Draft is a task that has not been accepted by the store yet. It exists only
// on the client and carries no id, so it cannot be toggled or deleted. It has
// no completed field either: creation always starts incomplete.
type Draft struct {
	Title string
}

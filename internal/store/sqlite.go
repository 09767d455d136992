package store

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"todos/internal/task"
)

// SQLite is a Store backed by a sqlite database.
type SQLite struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	s := &SQLite{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) init() error {
	// AUTOINCREMENT so ids of deleted tasks are never handed out again.
	_, err := s.db.Exec(
		`CREATE TABLE IF NOT EXISTS tasks (
		id integer primary key autoincrement,
		title text not null,
		completed integer not null default 0
		)`,
	)
	return err
}

// List returns all tasks ordered by id. The ordering is an implementation
// detail for stable output, not part of the Store contract.
func (s *SQLite) List(ctx context.Context) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, completed FROM tasks ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Create implements Store.
func (s *SQLite) Create(ctx context.Context, title string) (task.Task, error) {
	if strings.TrimSpace(title) == "" {
		return task.Task{}, &task.ValidationError{Reason: "title must not be empty"}
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO tasks(title, completed) VALUES (?, 0)`, title)
	if err != nil {
		return task.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return task.Task{}, err
	}
	return task.Task{ID: id, Title: title, Completed: false}, nil
}

// Replace implements Store.
func (s *SQLite) Replace(ctx context.Context, id int64, title string, completed bool) (task.Task, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET title = ?, completed = ? WHERE id = ?`, title, completed, id)
	if err != nil {
		return task.Task{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return task.Task{}, err
	}
	if n == 0 {
		return task.Task{}, &task.NotFoundError{ID: id}
	}
	return task.Task{ID: id, Title: title, Completed: completed}, nil
}

// Delete implements Store.
func (s *SQLite) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return err
}

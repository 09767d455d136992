// Package resthttp implements the service.Service interface over the todosd
// REST resource.
package resthttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"todos/internal/task"
)

// APITimeout is the timeout for API calls.
const APITimeout = 5 * time.Second

// Client implements service.Service against a todosd server.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// New creates a client for the server at rawURL.
func New(rawURL string) (*Client, error) {
	return NewWithHTTPClient(rawURL, http.DefaultClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(rawURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url: %s", rawURL)
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

// taskBody is the request schema for create and replace. It carries no id:
// identity travels in the path.
type taskBody struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type errorBody struct {
	Error string `json:"error"`
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	if err := c.call(ctx, http.MethodGet, c.baseURL.JoinPath("api", "tasks"), nil, &out, 0, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, title string) (task.Task, error) {
	var out task.Task
	err := c.call(ctx, http.MethodPost, c.baseURL.JoinPath("api", "tasks"),
		&taskBody{Title: title}, &out, 0, http.StatusCreated, http.StatusOK)
	return out, err
}

// ReplaceTask implements service.Service.
func (c *Client) ReplaceTask(ctx context.Context, id int64, title string, completed bool) (task.Task, error) {
	var out task.Task
	err := c.call(ctx, http.MethodPut, c.baseURL.JoinPath("api", "tasks", strconv.FormatInt(id, 10)),
		&taskBody{Title: title, Completed: completed}, &out, id, http.StatusOK)
	return out, err
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, c.baseURL.JoinPath("api", "tasks", strconv.FormatInt(id, 10)),
		nil, nil, id, http.StatusNoContent, http.StatusOK)
}

// call performs one API call. A request that never reaches the server comes
// back as *task.TransportError; an error status is mapped to the matching
// error type by mapError. When out is non-nil the response body is decoded
// into it.
func (c *Client) call(ctx context.Context, method string, u *url.URL, body any, out any, id int64, want ...int) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &task.TransportError{Op: method + " " + u.Path, Err: err}
	}
	defer resp.Body.Close()

	for _, status := range want {
		if resp.StatusCode == status {
			if out != nil {
				if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
					return fmt.Errorf("failed to decode response: %w", err)
				}
			}
			return nil
		}
	}
	return mapError(resp, id)
}

// mapError turns an error status into the client-side error taxonomy. The
// server's error payload is surfaced verbatim where one exists.
func mapError(resp *http.Response, id int64) error {
	msg := http.StatusText(resp.StatusCode)
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		msg = body.Error
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return &task.NotFoundError{ID: id}
	case http.StatusBadRequest:
		return &task.ValidationError{Reason: msg}
	}
	return fmt.Errorf("unexpected status code: %d: %s", resp.StatusCode, msg)
}

// Package api exposes the task collection as an HTTP resource under
// /api/tasks. Handlers are stateless: one inbound request maps to exactly one
// store call.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"

	"todos/internal/store"
	"todos/internal/task"
)

// taskRequest is the accepted body for POST and PUT. There is deliberately no
// id field: the path id is authoritative and a body id cannot override it.
type taskRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	store store.Store
}

// NewRouter returns a router serving the task resource backed by st.
func NewRouter(st store.Store) *mux.Router {
	h := &handler{store: st}

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			m := httpsnoop.CaptureMetrics(next, writer, request)
			slog.Info("handled", "method", request.Method, "url", request.URL, "duration", m.Duration, "status", m.Code)
		})
	})

	r.Methods(http.MethodGet).Path("/api/tasks").HandlerFunc(h.list)
	r.Methods(http.MethodPost).Path("/api/tasks").HandlerFunc(h.create)
	r.Methods(http.MethodPut).Path("/api/tasks/{id}").HandlerFunc(h.replace)
	r.Methods(http.MethodDelete).Path("/api/tasks/{id}").HandlerFunc(h.delete)
	return r
}

func (h *handler) list(writer http.ResponseWriter, request *http.Request) {
	tasks, err := h.store.List(request.Context())
	if err != nil {
		slog.Error("failed to list tasks", "err", err)
		writeError(writer, http.StatusInternalServerError, "internal error")
		return
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	writeJSON(writer, http.StatusOK, tasks)
}

func (h *handler) create(writer http.ResponseWriter, request *http.Request) {
	var body taskRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		writeError(writer, http.StatusBadRequest, "invalid request body")
		return
	}

	// The completed flag in the body is ignored: creation always starts
	// incomplete, whatever the client claims.
	created, err := h.store.Create(request.Context(), body.Title)
	if err != nil {
		var verr *task.ValidationError
		if errors.As(err, &verr) {
			writeError(writer, http.StatusBadRequest, verr.Error())
			return
		}
		slog.Error("failed to create task", "err", err)
		writeError(writer, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(writer, http.StatusCreated, created)
}

func (h *handler) replace(writer http.ResponseWriter, request *http.Request) {
	id, ok := pathID(writer, request)
	if !ok {
		return
	}
	var body taskRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		writeError(writer, http.StatusBadRequest, "invalid request body")
		return
	}

	replaced, err := h.store.Replace(request.Context(), id, body.Title, body.Completed)
	if err != nil {
		var nferr *task.NotFoundError
		if errors.As(err, &nferr) {
			writeError(writer, http.StatusNotFound, nferr.Error())
			return
		}
		slog.Error("failed to replace task", "id", id, "err", err)
		writeError(writer, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(writer, http.StatusOK, replaced)
}

func (h *handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := pathID(writer, request)
	if !ok {
		return
	}
	// Deleting an absent id succeeds too: the record is gone either way.
	if err := h.store.Delete(request.Context(), id); err != nil {
		slog.Error("failed to delete task", "id", id, "err", err)
		writeError(writer, http.StatusInternalServerError, "internal error")
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

func pathID(writer http.ResponseWriter, request *http.Request) (int64, bool) {
	raw := mux.Vars(request)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(writer, http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return id, true
}

func writeJSON(writer http.ResponseWriter, status int, v any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

func writeError(writer http.ResponseWriter, status int, msg string) {
	writeJSON(writer, status, errorResponse{Error: msg})
}

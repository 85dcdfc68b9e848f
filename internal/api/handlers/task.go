package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/farhan7479/taskflow/internal/api/middleware"
	"github.com/farhan7479/taskflow/internal/domain"
	"github.com/farhan7479/taskflow/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TaskHandler struct {
	responder
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService, production bool) *TaskHandler {
	return &TaskHandler{
		responder:   responder{production: production},
		taskService: taskService,
	}
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// optionalString distinguishes an absent key from an explicit JSON null.
// encoding/json only calls UnmarshalJSON for keys that are present.
type optionalString struct {
	set   bool
	value *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.set = true
	if string(b) == "null" {
		return nil
	}
	return json.Unmarshal(b, &o.value)
}

type UpdateTaskRequest struct {
	Title       *string        `json:"title"`
	Description optionalString `json:"description"`
	Status      *string        `json:"status"`
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.respondError(w, "task.List", domain.ErrUnauthenticated)
		return
	}

	tasks, err := h.taskService.List(r.Context(), userID)
	if err != nil {
		h.respondError(w, "task.List", err)
		return
	}

	h.respond(w, http.StatusOK, "", tasks)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.respondError(w, "task.Get", domain.ErrUnauthenticated)
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		h.respondError(w, "task.Get", err)
		return
	}

	task, err := h.taskService.Get(r.Context(), userID, taskID)
	if err != nil {
		h.respondError(w, "task.Get", err)
		return
	}

	h.respond(w, http.StatusOK, "", task)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.respondError(w, "task.Create", domain.ErrUnauthenticated)
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, "task.Create", domain.NewValidationError("invalid request body"))
		return
	}

	task, err := h.taskService.Create(r.Context(), userID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(w, "task.Create", err)
		return
	}

	h.respond(w, http.StatusCreated, "task created successfully", task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.respondError(w, "task.Update", domain.ErrUnauthenticated)
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		h.respondError(w, "task.Update", err)
		return
	}

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, "task.Update", domain.NewValidationError("invalid request body"))
		return
	}

	task, err := h.taskService.Update(r.Context(), userID, taskID, service.UpdateTaskInput{
		Title:          req.Title,
		Description:    req.Description.value,
		DescriptionSet: req.Description.set,
		Status:         req.Status,
	})
	if err != nil {
		h.respondError(w, "task.Update", err)
		return
	}

	h.respond(w, http.StatusOK, "task updated successfully", task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.respondError(w, "task.Delete", domain.ErrUnauthenticated)
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		h.respondError(w, "task.Delete", err)
		return
	}

	if err := h.taskService.Delete(r.Context(), userID, taskID); err != nil {
		h.respondError(w, "task.Delete", err)
		return
	}

	h.respond(w, http.StatusOK, "task deleted successfully", nil)
}

// parseTaskID reads the task id path parameter. A malformed id cannot name
// an existing task, so it maps to not-found rather than a validation error.
func parseTaskID(r *http.Request) (uuid.UUID, error) {
	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrTaskNotFound
	}
	return taskID, nil
}

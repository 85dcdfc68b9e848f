package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/farhan7479/taskflow/internal/domain"
)

// SuccessResponse is the envelope for all successful responses. Data is
// always present, even when null (e.g. after a delete).
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the envelope for all failures. Error carries diagnostic
// detail and is only populated outside production.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// responder translates service errors into the response envelope. It is the
// single place where error kinds become HTTP status codes.
type responder struct {
	production bool
}

func (rp responder) respond(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (rp responder) respondError(w http.ResponseWriter, op string, err error) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR [%s] %v", op, err)
	}

	resp := ErrorResponse{Success: false, Message: message}
	if !rp.production {
		resp.Error = err.Error()
	}
	writeJSON(w, status, resp)
}

// classify maps an error to its status code and a stable, human-readable
// message. Messages are constant per failure class so clients can branch on
// them.
func classify(err error) (int, string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrTaskForbidden):
		return http.StatusForbidden, domain.ErrTaskForbidden.Error()
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, domain.ErrTaskNotFound.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, domain.ErrUserNotFound.Error()
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusConflict, domain.ErrEmailExists.Error()
	case errors.Is(err, domain.ErrMissingSecret):
		return http.StatusInternalServerError, "server configuration error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

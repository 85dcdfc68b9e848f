package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/farhan7479/taskflow/internal/api/middleware"
	"github.com/farhan7479/taskflow/internal/domain"
	"github.com/farhan7479/taskflow/internal/service"
)

type AuthHandler struct {
	responder
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService, production bool) *AuthHandler {
	return &AuthHandler{
		responder:   responder{production: production},
		authService: authService,
	}
}

type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserResponse is the sanitized user view; the password hash never leaves
// the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, "auth.Register", domain.NewValidationError("invalid request body"))
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.respondError(w, "auth.Register", err)
		return
	}

	h.respond(w, http.StatusCreated, "user registered successfully", toUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, "auth.Login", domain.NewValidationError("invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(w, "auth.Login", err)
		return
	}

	h.respond(w, http.StatusOK, "login successful", LoginResponse{
		User:         toUserResponse(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, "auth.Refresh", domain.NewValidationError("invalid request body"))
		return
	}

	pair, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.respondError(w, "auth.Refresh", err)
		return
	}

	h.respond(w, http.StatusOK, "token refreshed successfully", TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.respondError(w, "auth.Profile", domain.ErrUnauthenticated)
		return
	}

	user, err := h.authService.GetProfile(r.Context(), userID)
	if err != nil {
		h.respondError(w, "auth.Profile", err)
		return
	}

	h.respond(w, http.StatusOK, "", toUserResponse(user))
}

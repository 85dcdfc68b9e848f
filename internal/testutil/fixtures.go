package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/farhan7479/taskflow/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	name     *string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithName sets the optional display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = &name
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Name:         b.name,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndAuthenticate creates a user via the API and logs in, returning the
// user and a valid access token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	resp := DoJSON(t, http.MethodPost, ts.APIURL("/auth/register"), "", map[string]interface{}{
		"email":    b.email,
		"password": b.password,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("failed to register user: status %d", resp.StatusCode)
	}

	resp = DoJSON(t, http.MethodPost, ts.APIURL("/auth/login"), "", map[string]interface{}{
		"email":    b.email,
		"password": b.password,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("failed to log in: status %d", resp.StatusCode)
	}

	var login struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	DecodeEnvelope(t, resp).DecodeData(t, &login)

	userID, err := uuid.Parse(login.User.ID)
	if err != nil {
		t.Fatalf("failed to parse user ID: %v", err)
	}

	user := &domain.User{
		ID:    userID,
		Email: login.User.Email,
	}

	return user, login.AccessToken
}

// TaskBuilder creates test tasks with a builder pattern
type TaskBuilder struct {
	owner       *domain.User
	title       string
	description *string
	status      domain.TaskStatus
}

// NewTaskBuilder creates a new TaskBuilder with default values
func NewTaskBuilder(owner *domain.User) *TaskBuilder {
	return &TaskBuilder{
		owner:  owner,
		title:  fmt.Sprintf("task_%s", uuid.New().String()[:8]),
		status: domain.TaskStatusTodo,
	}
}

// WithTitle sets the title
func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.title = title
	return b
}

// WithDescription sets the description
func (b *TaskBuilder) WithDescription(description string) *TaskBuilder {
	b.description = &description
	return b
}

// WithStatus sets the status
func (b *TaskBuilder) WithStatus(status domain.TaskStatus) *TaskBuilder {
	b.status = status
	return b
}

// Build creates the task in the database
func (b *TaskBuilder) Build(t *testing.T, db *gorm.DB) *domain.Task {
	t.Helper()

	task := &domain.Task{
		ID:          uuid.New(),
		Title:       b.title,
		Description: b.description,
		Status:      b.status,
		UserID:      b.owner.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	return task
}

// DoJSON sends a JSON request with an optional bearer token and returns the
// response. A nil body sends no payload.
func DoJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/farhan7479/taskflow/internal/domain"
	"github.com/farhan7479/taskflow/internal/repository/postgres"
	"github.com/farhan7479/taskflow/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "create@example.com",
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, user))

	// The unique index is the single source of truth for duplicates and must
	// surface as gorm.ErrDuplicatedKey.
	duplicate := &domain.User{
		ID:           uuid.New(),
		Email:        "create@example.com",
		PasswordHash: "otherhash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	err := repo.Create(ctx, duplicate)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("lookup@example.com").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "existing email", email: "lookup@example.com"},
		{name: "unknown email", email: "ghost@example.com", wantErr: true},
		{name: "lookup is exact-match", email: "LOOKUP@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByEmail(ctx, tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// Deleting a user removes every task they own via the FK cascade.
func TestUserRepository_DeleteCascadesTasks(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	userRepo := postgres.NewUserRepository(testDB.DB)
	taskRepo := postgres.NewTaskRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	doomed1 := testutil.NewTaskBuilder(user).Build(t, testDB.DB)
	doomed2 := testutil.NewTaskBuilder(user).Build(t, testDB.DB)
	survivor := testutil.NewTaskBuilder(other).Build(t, testDB.DB)

	require.NoError(t, userRepo.Delete(ctx, user.ID))

	for _, id := range []uuid.UUID{doomed1.ID, doomed2.ID} {
		_, err := taskRepo.GetByID(ctx, id)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	}

	// Other users' tasks are untouched
	got, err := taskRepo.GetByID(ctx, survivor.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.UserID)
}

package user

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	return db
}

func TestCreateUser(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserInput{
		Username: "steve",
		Email:    "steve@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)
	assert.False(t, created.JoinedAt.IsZero())
}

func TestCreateUserDuplicate(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Username: "steve", Email: "steve@example.com"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserInput{Username: "steve", Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	_, err = svc.CreateUser(ctx, CreateUserInput{Username: "alex", Email: "steve@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestCreateUserMissingFields(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))

	_, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "steve"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserByEmail(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserInput{Username: "steve", Email: "steve@example.com"})
	require.NoError(t, err)

	found, err := svc.GetUserByEmail(ctx, "steve@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserMissing(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))

	_, err := svc.GetUser(context.Background(), 424242)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	repo, state := newTestRepository()
	svc := NewAdminService(repo, testLogger())

	user := seedUser(state, "Johnathan Maxwell Heritage", "john@example.com", "Passw0rd!", entity.RoleNormalUser)
	other := seedUser(state, "Margareth Wilhelmina Brooks", "margareth@example.com", "Passw0rd!", entity.RoleNormalUser)
	store := seedStore(state, "Fresh Grocery Market Downtown", "grocery@example.com", nil)
	seedRating(state, user.ID, store.ID, 4)
	seedRating(state, other.ID, store.ID, 5)

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalStores)
	assert.Equal(t, int64(2), stats.TotalRatings)
}

func TestListUsersOwnerRating(t *testing.T) {
	repo, state := newTestRepository()
	svc := NewAdminService(repo, testLogger())

	normal := seedUser(state, "Johnathan Maxwell Heritage", "john@example.com", "Passw0rd!", entity.RoleNormalUser)
	owner := seedUser(state, "Margareth Wilhelmina Brooks", "margareth@example.com", "Passw0rd!", entity.RoleStoreOwner)
	store := seedStore(state, "Fresh Grocery Market Downtown", "grocery@example.com", &owner.ID)
	seedRating(state, normal.ID, store.ID, 4)
	seedRating(state, owner.ID, store.ID, 2)

	users, err := svc.ListUsers(context.Background(), repository.SearchParams{})
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Normal users carry no derived rating; store owners do
	assert.Nil(t, users[0].Rating)
	require.NotNil(t, users[1].Rating)
	assert.Equal(t, 3.0, *users[1].Rating)
}

func TestGetUserDetail(t *testing.T) {
	repo, state := newTestRepository()
	svc := NewAdminService(repo, testLogger())

	user := seedUser(state, "Johnathan Maxwell Heritage", "john@example.com", "Passw0rd!", entity.RoleNormalUser)
	store := seedStore(state, "Fresh Grocery Market Downtown", "grocery@example.com", nil)
	seedRating(state, user.ID, store.ID, 5)

	detail, err := svc.GetUser(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.Email, detail.Email)
	require.Len(t, detail.Ratings, 1)
	assert.Equal(t, 5, detail.Ratings[0].Rating)
	assert.Equal(t, store.Name, detail.Ratings[0].StoreName)
}

func TestGetUserNotFound(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewAdminService(repo, testLogger())

	_, err := svc.GetUser(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAdminCreateUser(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewAdminService(repo, testLogger())

	user, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{
		Name:     "Margareth Wilhelmina Brooks",
		Email:    "margareth@example.com",
		Password: "Passw0rd!",
		Address:  "34 Market Road",
		Role:     "Store Owner",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, user.Role)
}

func TestAdminCreateUserInvalidRole(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewAdminService(repo, testLogger())

	_, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{
		Name:     "Margareth Wilhelmina Brooks",
		Email:    "margareth@example.com",
		Password: "Passw0rd!",
		Address:  "34 Market Road",
		Role:     "Superuser",
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "role", validationErr.Fields[0].Field)
}

func TestGetStoreDetail(t *testing.T) {
	repo, state := newTestRepository()
	svc := NewAdminService(repo, testLogger())

	rater := seedUser(state, "Johnathan Maxwell Heritage", "john@example.com", "Passw0rd!", entity.RoleNormalUser)
	store := seedStore(state, "Fresh Grocery Market Downtown", "grocery@example.com", nil)
	seedRating(state, rater.ID, store.ID, 3)

	detail, err := svc.GetStore(context.Background(), store.ID)
	require.NoError(t, err)

	assert.Equal(t, store.Email, detail.Email)
	assert.Equal(t, 3.0, detail.AverageRating)
	assert.Equal(t, int64(1), detail.TotalRatings)
	require.Len(t, detail.Ratings, 1)
	assert.Equal(t, rater.Name, detail.Ratings[0].UserName)
}

func TestAdminCreateStoreValidation(t *testing.T) {
	repo, _ := newTestRepository()
	svc := NewAdminService(repo, testLogger())

	// Admin form enforces the full name-length rule
	_, err := svc.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name:    "Too Short",
		Email:   "store@example.com",
		Address: "34 Market Road",
	})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "name", validationErr.Fields[0].Field)
}

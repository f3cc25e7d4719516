package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubUserRepo serves a single canned user for the auth middleware tests.
type stubUserRepo struct {
	user *entity.User
	err  error
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByIDWithRating(context.Context, int64) (*entity.UserWithRating, error) {
	return nil, nil
}

func (s *stubUserRepo) FindAll(context.Context, repository.SearchParams) ([]*entity.UserWithRating, error) {
	return nil, nil
}

func (s *stubUserRepo) UpdatePassword(context.Context, int64, string) error { return nil }

func (s *stubUserRepo) CountAll(context.Context) (int64, error) { return 0, nil }

func testUser(role entity.UserRole) *entity.User {
	return &entity.User{
		ID:      1,
		Name:    "Johnathan Maxwell Heritage",
		Email:   "john@example.com",
		Address: "12 Example Street",
		Role:    role,
	}
}

func authMiddleware(repo *stubUserRepo) (func(http.Handler) http.Handler, *utils.TokenManager) {
	tokens := utils.NewTokenManager(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1})
	return Authenticate(tokens, repo, zap.NewNop()), tokens
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestAuthenticateMissingHeader(t *testing.T) {
	mw, _ := authMiddleware(&stubUserRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access token required", decodeResponse(t, rec).Message)
}

func TestAuthenticateBadFormat(t *testing.T) {
	mw, _ := authMiddleware(&stubUserRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Token abc123")

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	mw, _ := authMiddleware(&stubUserRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeResponse(t, rec).Message)
}

func TestAuthenticateUserGone(t *testing.T) {
	// Repo has no users, so a valid token resolves to nobody
	mw, tokens := authMiddleware(&stubUserRepo{})

	token, err := tokens.Issue(1)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User not found", decodeResponse(t, rec).Message)
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := &stubUserRepo{user: testUser(entity.RoleNormalUser)}
	mw, tokens := authMiddleware(repo)

	token, err := tokens.Issue(1)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	var captured utils.CurrentUser
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		require.True(t, ok)
		captured = user
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), captured.ID)
	assert.Equal(t, "john@example.com", captured.Email)
	assert.Equal(t, string(entity.RoleNormalUser), captured.Role)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		userRole entity.UserRole
		allowed  []entity.UserRole
		want     int
	}{
		{
			name:     "exact role passes",
			userRole: entity.RoleAdmin,
			allowed:  []entity.UserRole{entity.RoleAdmin},
			want:     http.StatusOK,
		},
		{
			name:     "role in set passes",
			userRole: entity.RoleNormalUser,
			allowed:  []entity.UserRole{entity.RoleNormalUser, entity.RoleAdmin},
			want:     http.StatusOK,
		},
		{
			name:     "role outside set is forbidden",
			userRole: entity.RoleStoreOwner,
			allowed:  []entity.UserRole{entity.RoleNormalUser, entity.RoleAdmin},
			want:     http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := RequireRole(zap.NewNop(), tt.allowed...)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			ctx := utils.SetUserContext(req.Context(), utils.CurrentUser{
				ID:   1,
				Role: string(tt.userRole),
			})

			mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireRoleNoUserInContext(t *testing.T) {
	mw := RequireRole(zap.NewNop(), entity.RoleAdmin)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

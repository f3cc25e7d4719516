package usecase

import (
	"context"
	"fmt"
	"strings"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type AdminService interface {
	DashboardStats(ctx context.Context) (*response.DashboardStats, error)
	ListUsers(ctx context.Context, params repository.SearchParams) ([]response.UserResponse, error)
	GetUser(ctx context.Context, id int64) (*response.UserDetailResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	ListStores(ctx context.Context, params repository.SearchParams) ([]response.StoreResponse, error)
	GetStore(ctx context.Context, id int64) (*response.StoreDetailResponse, error)
	CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) DashboardStats(ctx context.Context) (*response.DashboardStats, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalStores, err := s.repo.Store.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stores: %w", err)
	}

	totalRatings, err := s.repo.Rating.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ratings: %w", err)
	}

	return &response.DashboardStats{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

func (s *adminService) ListUsers(ctx context.Context, params repository.SearchParams) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, response.UserWithRatingToResponse(user))
	}
	return out, nil
}

func (s *adminService) GetUser(ctx context.Context, id int64) (*response.UserDetailResponse, error) {
	user, err := s.repo.User.FindByIDWithRating(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, notFound("User not found")
	}

	ratings, err := s.repo.Rating.FindByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user ratings: %w", err)
	}

	detail := &response.UserDetailResponse{
		UserResponse: response.UserWithRatingToResponse(user),
		Ratings:      make([]response.RatingGivenResponse, 0, len(ratings)),
	}
	for _, rating := range ratings {
		detail.Ratings = append(detail.Ratings, response.RatingToGivenResponse(rating))
	}
	return detail, nil
}

func (s *adminService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, validationFailed(errs)
	}

	// oneof already screens the role; keep the closed-enum check so a
	// loosened tag can never widen what reaches the database
	role := entity.UserRole(req.Role)
	if !role.Valid() {
		return nil, fieldError("role", "Invalid role selected")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Address:      strings.TrimSpace(req.Address),
		Role:         role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, duplicate("User with this email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created by admin",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *adminService) ListStores(ctx context.Context, params repository.SearchParams) ([]response.StoreResponse, error) {
	stores, err := s.repo.Store.FindAll(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	return response.StoresToResponse(stores), nil
}

func (s *adminService) GetStore(ctx context.Context, id int64) (*response.StoreDetailResponse, error) {
	store, err := s.repo.Store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		return nil, notFound("Store not found")
	}

	ratings, err := s.repo.Rating.FindByStore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find store ratings: %w", err)
	}

	detail := &response.StoreDetailResponse{
		StoreResponse: response.StoreToResponse(store),
		Ratings:       make([]response.RatingReceivedResponse, 0, len(ratings)),
	}
	for _, rating := range ratings {
		detail.Ratings = append(detail.Ratings, response.RatingToReceivedResponse(rating))
	}
	return detail, nil
}

func (s *adminService) CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create store validation failed", zap.Any("errors", errs))
		return nil, validationFailed(errs)
	}

	store := &entity.Store{
		Name:    strings.TrimSpace(req.Name),
		Email:   normalizeEmail(req.Email),
		Address: strings.TrimSpace(req.Address),
		OwnerID: req.OwnerID,
	}

	if err := s.repo.Store.Create(ctx, store); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, duplicate("A store with this email already exists")
		}
		return nil, fmt.Errorf("create store: %w", err)
	}

	s.log.Info("Store created by admin",
		zap.Int64("store_id", store.ID),
		zap.String("email", store.Email))

	resp := response.StoreToResponse(&entity.StoreWithStats{Store: *store})
	return &resp, nil
}

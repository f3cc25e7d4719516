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

type StoreService interface {
	ListForUser(ctx context.Context, userID int64, params repository.SearchParams) ([]response.StoreResponse, error)
	SubmitRating(ctx context.Context, userID int64, req *request.SubmitRatingRequest) (created bool, err error)
	RatingHistory(ctx context.Context, userID int64) ([]response.RatingHistoryResponse, error)
	CreateStore(ctx context.Context, req *request.OwnerCreateStoreRequest) (*response.StoreResponse, error)
}

type storeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStoreService(repo *repository.Repository, log *zap.Logger) StoreService {
	return &storeService{
		repo: repo,
		log:  log.With(zap.String("service", "store")),
	}
}

func (s *storeService) ListForUser(ctx context.Context, userID int64, params repository.SearchParams) ([]response.StoreResponse, error) {
	stores, err := s.repo.Store.FindAllForUser(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	return response.StoresToResponse(stores), nil
}

// SubmitRating records or replaces the user's rating for a store as one
// atomic statement. Returns true when this was the user's first rating
// for the store.
func (s *storeService) SubmitRating(ctx context.Context, userID int64, req *request.SubmitRatingRequest) (bool, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit rating validation failed", zap.Any("errors", errs))
		return false, validationFailed(errs)
	}

	exists, err := s.repo.Store.Exists(ctx, req.StoreID)
	if err != nil {
		return false, fmt.Errorf("check store: %w", err)
	}
	if !exists {
		return false, notFound("Store not found")
	}

	rating := &entity.Rating{
		UserID:  userID,
		StoreID: req.StoreID,
		Rating:  req.Rating,
	}

	created, err := s.repo.Rating.Upsert(ctx, rating)
	if err != nil {
		return false, fmt.Errorf("submit rating: %w", err)
	}

	s.log.Info("Rating submitted",
		zap.Int64("user_id", userID),
		zap.Int64("store_id", req.StoreID),
		zap.Int("rating", req.Rating),
		zap.Bool("created", created))

	return created, nil
}

func (s *storeService) RatingHistory(ctx context.Context, userID int64) ([]response.RatingHistoryResponse, error) {
	ratings, err := s.repo.Rating.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("rating history: %w", err)
	}

	out := make([]response.RatingHistoryResponse, 0, len(ratings))
	for _, rating := range ratings {
		out = append(out, response.RatingToHistoryResponse(rating))
	}
	return out, nil
}

func (s *storeService) CreateStore(ctx context.Context, req *request.OwnerCreateStoreRequest) (*response.StoreResponse, error) {
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

	// Duplicate detection rides on the unique index, no pre-check
	if err := s.repo.Store.Create(ctx, store); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, duplicate("A store with this email already exists")
		}
		return nil, fmt.Errorf("create store: %w", err)
	}

	s.log.Info("Store created",
		zap.Int64("store_id", store.ID),
		zap.String("email", store.Email))

	resp := response.StoreToResponse(&entity.StoreWithStats{Store: *store})
	return &resp, nil
}

package usecase

import (
	"context"
	"fmt"
	"math"

	"store-rating/internal/data/repository"
	"store-rating/internal/dto/response"

	"go.uber.org/zap"
)

type OwnerService interface {
	Dashboard(ctx context.Context, ownerID int64) (*response.OwnerDashboardResponse, error)
	StoreRatings(ctx context.Context, ownerID, storeID int64) (*response.StoreRatingsResponse, error)
	Raters(ctx context.Context, ownerID int64, params repository.SearchParams) ([]response.RaterResponse, error)
}

type ownerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOwnerService(repo *repository.Repository, log *zap.Logger) OwnerService {
	return &ownerService{
		repo: repo,
		log:  log.With(zap.String("service", "owner")),
	}
}

func (s *ownerService) Dashboard(ctx context.Context, ownerID int64) (*response.OwnerDashboardResponse, error) {
	stores, err := s.repo.Store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find owned stores: %w", err)
	}

	ratings, err := s.repo.Rating.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find owned ratings: %w", err)
	}

	dashboard := &response.OwnerDashboardResponse{
		Stores:  response.StoresToResponse(stores),
		Ratings: make([]response.OwnerRatingResponse, 0, len(ratings)),
	}

	var sum int
	for _, rating := range ratings {
		dashboard.Ratings = append(dashboard.Ratings, response.RatingToOwnerResponse(rating))
		sum += rating.Rating.Rating
	}

	var average float64
	if len(ratings) > 0 {
		average = roundToTenth(float64(sum) / float64(len(ratings)))
	}

	dashboard.Statistics = response.OwnerStatistics{
		TotalStores:   len(stores),
		TotalRatings:  len(ratings),
		AverageRating: average,
	}

	return dashboard, nil
}

// StoreRatings returns the drill-down for one owned store. A store that
// exists but belongs to someone else is reported exactly like a missing
// one.
func (s *ownerService) StoreRatings(ctx context.Context, ownerID, storeID int64) (*response.StoreRatingsResponse, error) {
	store, err := s.repo.Store.FindByIDForOwner(ctx, storeID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		return nil, notFound("Store not found or access denied")
	}

	ratings, err := s.repo.Rating.FindByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("find store ratings: %w", err)
	}

	// Fixed-key histogram so the client always sees all five buckets
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	detail := &response.StoreRatingsResponse{
		Store:              response.StoreToResponse(store),
		Ratings:            make([]response.OwnerRatingResponse, 0, len(ratings)),
		RatingDistribution: distribution,
	}
	for _, rating := range ratings {
		detail.Ratings = append(detail.Ratings, response.RatingToOwnerResponse(rating))
		if rating.Rating.Rating >= 1 && rating.Rating.Rating <= 5 {
			distribution[rating.Rating.Rating]++
		}
	}

	return detail, nil
}

func (s *ownerService) Raters(ctx context.Context, ownerID int64, params repository.SearchParams) ([]response.RaterResponse, error) {
	raters, err := s.repo.Rating.FindRaters(ctx, ownerID, params)
	if err != nil {
		return nil, fmt.Errorf("find raters: %w", err)
	}

	out := make([]response.RaterResponse, 0, len(raters))
	for _, rater := range raters {
		out = append(out, response.RaterToResponse(rater))
	}
	return out, nil
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

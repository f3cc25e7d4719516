package response

import (
	"time"

	"store-rating/internal/data/entity"
)

// RatingHistoryResponse is one entry in the caller's own rating history.
type RatingHistoryResponse struct {
	ID           int64     `json:"id"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	StoreID      int64     `json:"store_id"`
	StoreName    string    `json:"store_name"`
	StoreAddress string    `json:"store_address"`
}

// OwnerRatingResponse is one rating on an owned store, with rater identity.
type OwnerRatingResponse struct {
	ID          int64     `json:"id"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	StoreID     int64     `json:"store_id"`
	StoreName   string    `json:"store_name,omitempty"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	UserAddress string    `json:"user_address,omitempty"`
}

// RaterResponse summarizes one user's rating activity on an owner's stores.
type RaterResponse struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Address            string          `json:"address"`
	Role               entity.UserRole `json:"role"`
	TotalRatingsGiven  int64           `json:"total_ratings_given"`
	AverageRatingGiven float64         `json:"average_rating_given"`
	LastRatingDate     time.Time       `json:"last_rating_date"`
}

func RatingToHistoryResponse(rating *entity.RatingWithStore) RatingHistoryResponse {
	return RatingHistoryResponse{
		ID:           rating.ID,
		Rating:       rating.Rating.Rating,
		CreatedAt:    rating.CreatedAt,
		UpdatedAt:    rating.UpdatedAt,
		StoreID:      rating.StoreID,
		StoreName:    rating.StoreName,
		StoreAddress: rating.StoreAddress,
	}
}

func RatingToOwnerResponse(rating *entity.RatingWithRater) OwnerRatingResponse {
	return OwnerRatingResponse{
		ID:          rating.ID,
		Rating:      rating.Rating.Rating,
		CreatedAt:   rating.CreatedAt,
		UpdatedAt:   rating.UpdatedAt,
		StoreID:     rating.StoreID,
		StoreName:   rating.StoreName,
		UserID:      rating.UserID,
		UserName:    rating.UserName,
		UserEmail:   rating.UserEmail,
		UserAddress: rating.UserAddress,
	}
}

func RaterToResponse(rater *entity.RaterSummary) RaterResponse {
	return RaterResponse{
		ID:                 rater.UserID,
		Name:               rater.Name,
		Email:              rater.Email,
		Address:            rater.Address,
		Role:               rater.Role,
		TotalRatingsGiven:  rater.TotalRatingsGiven,
		AverageRatingGiven: rater.AverageRatingGiven,
		LastRatingDate:     rater.LastRatingAt,
	}
}

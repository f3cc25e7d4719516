package response

import (
	"time"

	"store-rating/internal/data/entity"
)

type StoreResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	OwnerID       *int64    `json:"owner_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
	TotalRatings  int64     `json:"total_ratings"`
	// UserRating is the requesting user's own rating, user listings only
	UserRating *int `json:"user_rating,omitempty"`
}

// StoreDetailResponse is the admin view of one store with the ratings it
// has received.
type StoreDetailResponse struct {
	StoreResponse
	Ratings []RatingReceivedResponse `json:"ratings"`
}

// RatingReceivedResponse is one rating as seen from the store's side.
type RatingReceivedResponse struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserName  string    `json:"user_name"`
}

func StoreToResponse(store *entity.StoreWithStats) StoreResponse {
	return StoreResponse{
		ID:            store.ID,
		Name:          store.Name,
		Email:         store.Email,
		Address:       store.Address,
		OwnerID:       store.OwnerID,
		CreatedAt:     store.CreatedAt,
		AverageRating: store.AverageRating,
		TotalRatings:  store.TotalRatings,
		UserRating:    store.UserRating,
	}
}

func StoresToResponse(stores []*entity.StoreWithStats) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, store := range stores {
		out = append(out, StoreToResponse(store))
	}
	return out
}

func RatingToReceivedResponse(rating *entity.RatingWithRater) RatingReceivedResponse {
	return RatingReceivedResponse{
		ID:        rating.ID,
		Rating:    rating.Rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
		UserName:  rating.UserName,
	}
}

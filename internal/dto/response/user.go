package response

import (
	"time"

	"store-rating/internal/data/entity"
)

type UserResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Address   string          `json:"address"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
	// Rating is the derived owner rating; only present for store owners
	Rating *float64 `json:"rating,omitempty"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UserDetailResponse is the admin view of one user, including the ratings
// the user has given.
type UserDetailResponse struct {
	UserResponse
	Ratings []RatingGivenResponse `json:"ratings"`
}

// RatingGivenResponse is one rating as seen from the rater's side.
type RatingGivenResponse struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	StoreName string    `json:"store_name"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Address:   user.Address,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func UserWithRatingToResponse(user *entity.UserWithRating) UserResponse {
	resp := UserToResponse(&user.User)
	resp.Rating = user.OwnerRating
	return resp
}

func RatingToGivenResponse(rating *entity.RatingWithStore) RatingGivenResponse {
	return RatingGivenResponse{
		ID:        rating.ID,
		Rating:    rating.Rating.Rating,
		CreatedAt: rating.CreatedAt,
		StoreName: rating.StoreName,
	}
}

package entity

import "time"

// Rating is an integer 1-5 a user assigns to a store, at most one row
// per (user, store) pair.
type Rating struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	StoreID   int64     `db:"store_id"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RatingWithStore is a rating joined with the rated store, for a user's
// rating history.
type RatingWithStore struct {
	Rating
	StoreName    string `db:"store_name"`
	StoreAddress string `db:"store_address"`
}

// RatingWithRater is a rating joined with the rater identity, for store
// owner and admin views.
type RatingWithRater struct {
	Rating
	UserName    string `db:"user_name"`
	UserEmail   string `db:"user_email"`
	UserAddress string `db:"user_address"`
	StoreName   string `db:"store_name"`
}

// RaterSummary aggregates one user's rating activity across the stores
// of a single owner.
type RaterSummary struct {
	UserID             int64     `db:"id"`
	Name               string    `db:"name"`
	Email              string    `db:"email"`
	Address            string    `db:"address"`
	Role               UserRole  `db:"role"`
	TotalRatingsGiven  int64     `db:"total_ratings_given"`
	AverageRatingGiven float64   `db:"average_rating_given"`
	LastRatingAt       time.Time `db:"last_rating_date"`
}

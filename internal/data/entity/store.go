package entity

import "time"

type Store struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Address   string    `db:"address"`
	OwnerID   *int64    `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
}

// StoreWithStats carries the read-time aggregates; AverageRating and
// TotalRatings are never stored. UserRating is the requesting user's own
// rating and is only populated on user-facing listings.
type StoreWithStats struct {
	Store
	AverageRating float64 `db:"average_rating"`
	TotalRatings  int64   `db:"total_ratings"`
	UserRating    *int    `db:"user_rating"`
}

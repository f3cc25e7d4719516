package repository

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *entity.Rating) (created bool, err error)
	FindByUser(ctx context.Context, userID int64) ([]*entity.RatingWithStore, error)
	FindByStore(ctx context.Context, storeID int64) ([]*entity.RatingWithRater, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*entity.RatingWithRater, error)
	FindRaters(ctx context.Context, ownerID int64, params SearchParams) ([]*entity.RaterSummary, error)
	CountAll(ctx context.Context) (int64, error)
}

var raterListQuery = listQuery{
	filterable: map[string]string{
		"name":    "u.name",
		"email":   "u.email",
		"address": "u.address",
	},
	searchDefault: []string{"u.name", "u.email", "u.address"},
	sortable: map[string]string{
		"name":                 "name",
		"email":                "email",
		"address":              "address",
		"total_ratings_given":  "total_ratings_given",
		"average_rating_given": "average_rating_given",
		"last_rating_date":     "last_rating_date",
	},
	defaultOrder: "last_rating_date DESC",
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

// Upsert inserts the rating or, when the (user_id, store_id) row already
// exists, updates it in place. A single conditional statement; the unique
// constraint makes concurrent first submissions converge on one row.
// xmax = 0 only holds for freshly inserted tuples, which is how we tell
// insert from update without a second query.
func (rr *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) (bool, error) {
	query := `
		INSERT INTO ratings (user_id, store_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`

	var created bool
	err := rr.db.QueryRow(ctx, query,
		rating.UserID,
		rating.StoreID,
		rating.Rating,
	).Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt, &created)

	if err != nil {
		rr.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.Int64("user_id", rating.UserID),
			zap.Int64("store_id", rating.StoreID),
		)
		return false, fmt.Errorf("upsert rating for store %d by user %d: %w",
			rating.StoreID, rating.UserID, err)
	}

	return created, nil
}

func (rr *ratingRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.RatingWithStore, error) {
	query := `
		SELECT r.id, r.user_id, r.store_id, r.rating, r.created_at, r.updated_at,
		       s.name AS store_name, s.address AS store_address
		FROM ratings r
		JOIN stores s ON r.store_id = s.id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := rr.db.Query(ctx, query, userID)
	if err != nil {
		rr.log.Error("Failed to find ratings by user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find ratings by user %d: %w", userID, err)
	}
	defer rows.Close()

	var ratings []*entity.RatingWithStore
	for rows.Next() {
		var rating entity.RatingWithStore
		err := rows.Scan(
			&rating.ID,
			&rating.UserID,
			&rating.StoreID,
			&rating.Rating.Rating,
			&rating.CreatedAt,
			&rating.UpdatedAt,
			&rating.StoreName,
			&rating.StoreAddress,
		)
		if err != nil {
			rr.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}

func (rr *ratingRepository) FindByStore(ctx context.Context, storeID int64) ([]*entity.RatingWithRater, error) {
	query := `
		SELECT r.id, r.user_id, r.store_id, r.rating, r.created_at, r.updated_at,
		       u.name AS user_name, u.email AS user_email, u.address AS user_address
		FROM ratings r
		JOIN users u ON r.user_id = u.id
		WHERE r.store_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := rr.db.Query(ctx, query, storeID)
	if err != nil {
		rr.log.Error("Failed to find ratings by store",
			zap.Error(err),
			zap.Int64("store_id", storeID),
		)
		return nil, fmt.Errorf("find ratings by store %d: %w", storeID, err)
	}
	defer rows.Close()

	return scanRaterRows(rows, false)
}

// FindByOwner lists every rating on every store the owner owns, newest
// first, joined with both the store and the rater.
func (rr *ratingRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entity.RatingWithRater, error) {
	query := `
		SELECT r.id, r.user_id, r.store_id, r.rating, r.created_at, r.updated_at,
		       u.name AS user_name, u.email AS user_email, u.address AS user_address,
		       s.name AS store_name
		FROM ratings r
		JOIN stores s ON r.store_id = s.id
		JOIN users u ON r.user_id = u.id
		WHERE s.owner_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := rr.db.Query(ctx, query, ownerID)
	if err != nil {
		rr.log.Error("Failed to find ratings by owner",
			zap.Error(err),
			zap.Int64("owner_id", ownerID),
		)
		return nil, fmt.Errorf("find ratings by owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	return scanRaterRows(rows, true)
}

func (rr *ratingRepository) FindRaters(ctx context.Context, ownerID int64, params SearchParams) ([]*entity.RaterSummary, error) {
	query := `
		SELECT u.id, u.name, u.email, u.address, u.role,
		       COUNT(r.id) AS total_ratings_given,
		       AVG(r.rating) AS average_rating_given,
		       MAX(r.created_at) AS last_rating_date
		FROM users u
		JOIN ratings r ON u.id = r.user_id
		JOIN stores s ON r.store_id = s.id
		WHERE s.owner_id = $1
	`

	args := []any{ownerID}
	if where := raterListQuery.whereClause(params, &args); where != "" {
		query += " AND " + where
	}
	query += " GROUP BY u.id, u.name, u.email, u.address, u.role"
	query += " ORDER BY " + raterListQuery.orderClause(params)

	rows, err := rr.db.Query(ctx, query, args...)
	if err != nil {
		rr.log.Error("Failed to find raters",
			zap.Error(err),
			zap.Int64("owner_id", ownerID),
		)
		return nil, fmt.Errorf("find raters for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	var raters []*entity.RaterSummary
	for rows.Next() {
		var rater entity.RaterSummary
		err := rows.Scan(
			&rater.UserID,
			&rater.Name,
			&rater.Email,
			&rater.Address,
			&rater.Role,
			&rater.TotalRatingsGiven,
			&rater.AverageRatingGiven,
			&rater.LastRatingAt,
		)
		if err != nil {
			rr.log.Error("Failed to scan rater row", zap.Error(err))
			return nil, fmt.Errorf("scan rater row: %w", err)
		}
		raters = append(raters, &rater)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rater rows: %w", err)
	}

	return raters, nil
}

func (rr *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings`

	var count int64
	err := rr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		rr.log.Error("Failed to count ratings", zap.Error(err))
		return 0, fmt.Errorf("count all ratings: %w", err)
	}

	return count, nil
}

func scanRaterRows(rows pgx.Rows, withStoreName bool) ([]*entity.RatingWithRater, error) {
	var ratings []*entity.RatingWithRater
	for rows.Next() {
		var rating entity.RatingWithRater
		dest := []any{
			&rating.ID,
			&rating.UserID,
			&rating.StoreID,
			&rating.Rating.Rating,
			&rating.CreatedAt,
			&rating.UpdatedAt,
			&rating.UserName,
			&rating.UserEmail,
			&rating.UserAddress,
		}
		if withStoreName {
			dest = append(dest, &rating.StoreName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}

package repository

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id int64) (*entity.StoreWithStats, error)
	FindAll(ctx context.Context, params SearchParams) ([]*entity.StoreWithStats, error)
	FindAllForUser(ctx context.Context, userID int64, params SearchParams) ([]*entity.StoreWithStats, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*entity.StoreWithStats, error)
	FindByIDForOwner(ctx context.Context, storeID, ownerID int64) (*entity.StoreWithStats, error)
	Exists(ctx context.Context, id int64) (bool, error)
	CountAll(ctx context.Context) (int64, error)
}

var storeAdminListQuery = listQuery{
	filterable: map[string]string{
		"name":    "s.name",
		"email":   "s.email",
		"address": "s.address",
	},
	searchDefault: []string{"s.name", "s.email", "s.address"},
	sortable: map[string]string{
		"name":           "s.name",
		"email":          "s.email",
		"address":        "s.address",
		"average_rating": "average_rating",
		"total_ratings":  "total_ratings",
		"created_at":     "s.created_at",
	},
	defaultOrder: "s.name ASC",
}

// User-facing listing searches name/address only, the way the store browser
// exposes it.
var storeUserListQuery = listQuery{
	filterable: map[string]string{
		"name":    "s.name",
		"email":   "s.email",
		"address": "s.address",
	},
	searchDefault: []string{"s.name", "s.address"},
	sortable: map[string]string{
		"name":           "s.name",
		"address":        "s.address",
		"average_rating": "average_rating",
		"total_ratings":  "total_ratings",
		"created_at":     "s.created_at",
	},
	defaultOrder: "s.name ASC",
}

type storeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreRepository(db database.PgxIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log.With(zap.String("repository", "store")),
	}
}

func (sr *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (name, email, address, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := sr.db.QueryRow(ctx, query,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
	).Scan(&store.ID, &store.CreatedAt)

	if err != nil {
		if !IsUniqueViolation(err) {
			sr.log.Error("Failed to create store",
				zap.Error(err),
				zap.String("email", store.Email),
			)
		}
		return fmt.Errorf("create store %s: %w", store.Email, err)
	}

	return nil
}

func (sr *storeRepository) FindByID(ctx context.Context, id int64) (*entity.StoreWithStats, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
		       COALESCE(AVG(r.rating), 0) AS average_rating,
		       COUNT(r.id) AS total_ratings
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		WHERE s.id = $1
		GROUP BY s.id
	`

	var store entity.StoreWithStats
	err := sr.db.QueryRow(ctx, query, id).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
		&store.AverageRating,
		&store.TotalRatings,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by ID",
			zap.Error(err),
			zap.Int64("store_id", id),
		)
		return nil, fmt.Errorf("find store by ID %d: %w", id, err)
	}

	return &store, nil
}

func (sr *storeRepository) FindAll(ctx context.Context, params SearchParams) ([]*entity.StoreWithStats, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
		       COALESCE(AVG(r.rating), 0) AS average_rating,
		       COUNT(r.id) AS total_ratings
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
	`

	var args []any
	if where := storeAdminListQuery.whereClause(params, &args); where != "" {
		query += " WHERE " + where
	}
	query += " GROUP BY s.id"
	query += " ORDER BY " + storeAdminListQuery.orderClause(params)

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to list stores", zap.Error(err))
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	return scanStoreRows(rows, false)
}

// FindAllForUser lists stores with aggregates plus the requesting user's
// own rating, left-joined so unrated stores still appear.
func (sr *storeRepository) FindAllForUser(ctx context.Context, userID int64, params SearchParams) ([]*entity.StoreWithStats, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
		       COALESCE(AVG(r.rating), 0) AS average_rating,
		       COUNT(r.id) AS total_ratings,
		       ur.rating AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		LEFT JOIN ratings ur ON s.id = ur.store_id AND ur.user_id = $1
	`

	args := []any{userID}
	if where := storeUserListQuery.whereClause(params, &args); where != "" {
		query += " WHERE " + where
	}
	query += " GROUP BY s.id, ur.rating"
	query += " ORDER BY " + storeUserListQuery.orderClause(params)

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to list stores for user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("list stores for user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanStoreRows(rows, true)
}

func (sr *storeRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entity.StoreWithStats, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
		       COALESCE(AVG(r.rating), 0) AS average_rating,
		       COUNT(r.id) AS total_ratings
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		WHERE s.owner_id = $1
		GROUP BY s.id
		ORDER BY s.name ASC
	`

	rows, err := sr.db.Query(ctx, query, ownerID)
	if err != nil {
		sr.log.Error("Failed to list stores by owner",
			zap.Error(err),
			zap.Int64("owner_id", ownerID),
		)
		return nil, fmt.Errorf("list stores by owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	return scanStoreRows(rows, false)
}

// FindByIDForOwner returns nil when the store does not exist OR is not
// owned by ownerID; callers report both as not found so non-owners learn
// nothing about foreign stores.
func (sr *storeRepository) FindByIDForOwner(ctx context.Context, storeID, ownerID int64) (*entity.StoreWithStats, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
		       COALESCE(AVG(r.rating), 0) AS average_rating,
		       COUNT(r.id) AS total_ratings
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		WHERE s.id = $1 AND s.owner_id = $2
		GROUP BY s.id
	`

	var store entity.StoreWithStats
	err := sr.db.QueryRow(ctx, query, storeID, ownerID).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
		&store.AverageRating,
		&store.TotalRatings,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store for owner",
			zap.Error(err),
			zap.Int64("store_id", storeID),
			zap.Int64("owner_id", ownerID),
		)
		return nil, fmt.Errorf("find store %d for owner %d: %w", storeID, ownerID, err)
	}

	return &store, nil
}

func (sr *storeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1)`

	var exists bool
	err := sr.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		sr.log.Error("Failed to check store existence",
			zap.Error(err),
			zap.Int64("store_id", id),
		)
		return false, fmt.Errorf("check store %d exists: %w", id, err)
	}

	return exists, nil
}

func (sr *storeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stores`

	var count int64
	err := sr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		sr.log.Error("Failed to count stores", zap.Error(err))
		return 0, fmt.Errorf("count all stores: %w", err)
	}

	return count, nil
}

func scanStoreRows(rows pgx.Rows, withUserRating bool) ([]*entity.StoreWithStats, error) {
	var stores []*entity.StoreWithStats
	for rows.Next() {
		var store entity.StoreWithStats
		dest := []any{
			&store.ID,
			&store.Name,
			&store.Email,
			&store.Address,
			&store.OwnerID,
			&store.CreatedAt,
			&store.AverageRating,
			&store.TotalRatings,
		}
		if withUserRating {
			dest = append(dest, &store.UserRating)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate store rows: %w", err)
	}

	return stores, nil
}

package usecase

import (
	"context"
	"sort"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// fakeState is a shared in-memory database backing the repository fakes.
type fakeState struct {
	users   map[int64]*entity.User
	stores  map[int64]*entity.Store
	ratings map[int64]*entity.Rating

	nextUserID   int64
	nextStoreID  int64
	nextRatingID int64
}

func newFakeState() *fakeState {
	return &fakeState{
		users:   make(map[int64]*entity.User),
		stores:  make(map[int64]*entity.Store),
		ratings: make(map[int64]*entity.Rating),
	}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func (s *fakeState) sortedStoreIDs() []int64 {
	ids := make([]int64, 0, len(s.stores))
	for id := range s.stores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *fakeState) sortedRatingIDs() []int64 {
	ids := make([]int64, 0, len(s.ratings))
	for id := range s.ratings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *fakeState) storeStats(storeID int64) (avg float64, total int64) {
	var sum int
	for _, r := range s.ratings {
		if r.StoreID == storeID {
			sum += r.Rating
			total++
		}
	}
	if total > 0 {
		avg = float64(sum) / float64(total)
	}
	return avg, total
}

type fakeUserRepo struct{ s *fakeState }

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range f.s.users {
		if u.Email == user.Email {
			return uniqueViolation()
		}
	}
	f.s.nextUserID++
	user.ID = f.s.nextUserID
	user.CreatedAt = time.Now()
	clone := *user
	f.s.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.s.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByIDWithRating(ctx context.Context, id int64) (*entity.UserWithRating, error) {
	u, ok := f.s.users[id]
	if !ok {
		return nil, nil
	}
	out := &entity.UserWithRating{User: *u}
	if u.Role == entity.RoleStoreOwner {
		var sum, count int
		for _, store := range f.s.stores {
			if store.OwnerID != nil && *store.OwnerID == u.ID {
				for _, r := range f.s.ratings {
					if r.StoreID == store.ID {
						sum += r.Rating
						count++
					}
				}
			}
		}
		avg := 0.0
		if count > 0 {
			avg = float64(sum) / float64(count)
		}
		out.OwnerRating = &avg
	}
	return out, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, _ repository.SearchParams) ([]*entity.UserWithRating, error) {
	ids := make([]int64, 0, len(f.s.users))
	for id := range f.s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*entity.UserWithRating, 0, len(ids))
	for _, id := range ids {
		u, err := f.FindByIDWithRating(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	if u, ok := f.s.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.s.users)), nil
}

type fakeStoreRepo struct{ s *fakeState }

func (f *fakeStoreRepo) Create(_ context.Context, store *entity.Store) error {
	for _, st := range f.s.stores {
		if st.Email == store.Email {
			return uniqueViolation()
		}
	}
	f.s.nextStoreID++
	store.ID = f.s.nextStoreID
	store.CreatedAt = time.Now()
	clone := *store
	f.s.stores[store.ID] = &clone
	return nil
}

func (f *fakeStoreRepo) withStats(store *entity.Store) *entity.StoreWithStats {
	avg, total := f.s.storeStats(store.ID)
	return &entity.StoreWithStats{
		Store:         *store,
		AverageRating: avg,
		TotalRatings:  total,
	}
}

func (f *fakeStoreRepo) FindByID(_ context.Context, id int64) (*entity.StoreWithStats, error) {
	st, ok := f.s.stores[id]
	if !ok {
		return nil, nil
	}
	return f.withStats(st), nil
}

func (f *fakeStoreRepo) FindAll(_ context.Context, _ repository.SearchParams) ([]*entity.StoreWithStats, error) {
	out := make([]*entity.StoreWithStats, 0, len(f.s.stores))
	for _, id := range f.s.sortedStoreIDs() {
		out = append(out, f.withStats(f.s.stores[id]))
	}
	return out, nil
}

func (f *fakeStoreRepo) FindAllForUser(_ context.Context, userID int64, _ repository.SearchParams) ([]*entity.StoreWithStats, error) {
	out := make([]*entity.StoreWithStats, 0, len(f.s.stores))
	for _, id := range f.s.sortedStoreIDs() {
		st := f.withStats(f.s.stores[id])
		for _, r := range f.s.ratings {
			if r.StoreID == id && r.UserID == userID {
				own := r.Rating
				st.UserRating = &own
			}
		}
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeStoreRepo) FindByOwner(_ context.Context, ownerID int64) ([]*entity.StoreWithStats, error) {
	out := make([]*entity.StoreWithStats, 0)
	for _, id := range f.s.sortedStoreIDs() {
		st := f.s.stores[id]
		if st.OwnerID != nil && *st.OwnerID == ownerID {
			out = append(out, f.withStats(st))
		}
	}
	return out, nil
}

func (f *fakeStoreRepo) FindByIDForOwner(_ context.Context, storeID, ownerID int64) (*entity.StoreWithStats, error) {
	st, ok := f.s.stores[storeID]
	if !ok || st.OwnerID == nil || *st.OwnerID != ownerID {
		return nil, nil
	}
	return f.withStats(st), nil
}

func (f *fakeStoreRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.s.stores[id]
	return ok, nil
}

func (f *fakeStoreRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.s.stores)), nil
}

type fakeRatingRepo struct{ s *fakeState }

func (f *fakeRatingRepo) Upsert(_ context.Context, rating *entity.Rating) (bool, error) {
	now := time.Now()
	for _, r := range f.s.ratings {
		if r.UserID == rating.UserID && r.StoreID == rating.StoreID {
			r.Rating = rating.Rating
			r.UpdatedAt = now
			rating.ID = r.ID
			rating.CreatedAt = r.CreatedAt
			rating.UpdatedAt = now
			return false, nil
		}
	}
	f.s.nextRatingID++
	rating.ID = f.s.nextRatingID
	rating.CreatedAt = now
	rating.UpdatedAt = now
	clone := *rating
	f.s.ratings[rating.ID] = &clone
	return true, nil
}

func (f *fakeRatingRepo) FindByUser(_ context.Context, userID int64) ([]*entity.RatingWithStore, error) {
	out := make([]*entity.RatingWithStore, 0)
	for _, id := range f.s.sortedRatingIDs() {
		r := f.s.ratings[id]
		if r.UserID != userID {
			continue
		}
		entry := &entity.RatingWithStore{Rating: *r}
		if st, ok := f.s.stores[r.StoreID]; ok {
			entry.StoreName = st.Name
			entry.StoreAddress = st.Address
		}
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeRatingRepo) ratingWithRater(r *entity.Rating) *entity.RatingWithRater {
	entry := &entity.RatingWithRater{Rating: *r}
	if u, ok := f.s.users[r.UserID]; ok {
		entry.UserName = u.Name
		entry.UserEmail = u.Email
		entry.UserAddress = u.Address
	}
	if st, ok := f.s.stores[r.StoreID]; ok {
		entry.StoreName = st.Name
	}
	return entry
}

func (f *fakeRatingRepo) FindByStore(_ context.Context, storeID int64) ([]*entity.RatingWithRater, error) {
	out := make([]*entity.RatingWithRater, 0)
	for _, id := range f.s.sortedRatingIDs() {
		r := f.s.ratings[id]
		if r.StoreID == storeID {
			out = append(out, f.ratingWithRater(r))
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) FindByOwner(_ context.Context, ownerID int64) ([]*entity.RatingWithRater, error) {
	out := make([]*entity.RatingWithRater, 0)
	for _, id := range f.s.sortedRatingIDs() {
		r := f.s.ratings[id]
		st, ok := f.s.stores[r.StoreID]
		if ok && st.OwnerID != nil && *st.OwnerID == ownerID {
			out = append(out, f.ratingWithRater(r))
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) FindRaters(_ context.Context, ownerID int64, _ repository.SearchParams) ([]*entity.RaterSummary, error) {
	type agg struct {
		sum, count int
		last       time.Time
	}
	byUser := make(map[int64]*agg)
	for _, r := range f.s.ratings {
		st, ok := f.s.stores[r.StoreID]
		if !ok || st.OwnerID == nil || *st.OwnerID != ownerID {
			continue
		}
		a, ok := byUser[r.UserID]
		if !ok {
			a = &agg{}
			byUser[r.UserID] = a
		}
		a.sum += r.Rating
		a.count++
		if r.UpdatedAt.After(a.last) {
			a.last = r.UpdatedAt
		}
	}

	ids := make([]int64, 0, len(byUser))
	for id := range byUser {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*entity.RaterSummary, 0, len(ids))
	for _, id := range ids {
		u := f.s.users[id]
		a := byUser[id]
		out = append(out, &entity.RaterSummary{
			UserID:             u.ID,
			Name:               u.Name,
			Email:              u.Email,
			Address:            u.Address,
			Role:               u.Role,
			TotalRatingsGiven:  int64(a.count),
			AverageRatingGiven: float64(a.sum) / float64(a.count),
			LastRatingAt:       a.last,
		})
	}
	return out, nil
}

func (f *fakeRatingRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.s.ratings)), nil
}

func newTestRepository() (*repository.Repository, *fakeState) {
	state := newFakeState()
	return &repository.Repository{
		User:   &fakeUserRepo{s: state},
		Store:  &fakeStoreRepo{s: state},
		Rating: &fakeRatingRepo{s: state},
	}, state
}

func testTokenManager() *utils.TokenManager {
	return utils.NewTokenManager(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1})
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// seedUser inserts a user directly into the fake state, bypassing the
// service-level validation.
func seedUser(state *fakeState, name, email, password string, role entity.UserRole) *entity.User {
	hash, _ := utils.HashPassword(password)
	state.nextUserID++
	user := &entity.User{
		ID:           state.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Address:      "12 Example Street",
		Role:         role,
		CreatedAt:    time.Now(),
	}
	state.users[user.ID] = user
	return user
}

func seedStore(state *fakeState, name, email string, ownerID *int64) *entity.Store {
	state.nextStoreID++
	store := &entity.Store{
		ID:        state.nextStoreID,
		Name:      name,
		Email:     email,
		Address:   "34 Market Road",
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}
	state.stores[store.ID] = store
	return store
}

func seedRating(state *fakeState, userID, storeID int64, value int) *entity.Rating {
	state.nextRatingID++
	now := time.Now()
	rating := &entity.Rating{
		ID:        state.nextRatingID,
		UserID:    userID,
		StoreID:   storeID,
		Rating:    value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	state.ratings[rating.ID] = rating
	return rating
}

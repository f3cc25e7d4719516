package response

// DashboardStats are the platform-wide admin counters.
type DashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// OwnerStatistics summarizes a store owner's stores and feedback.
type OwnerStatistics struct {
	TotalStores   int     `json:"totalStores"`
	TotalRatings  int     `json:"totalRatings"`
	AverageRating float64 `json:"averageRating"`
}

// OwnerDashboardResponse is the whole store-owner dashboard payload.
type OwnerDashboardResponse struct {
	Stores     []StoreResponse       `json:"stores"`
	Ratings    []OwnerRatingResponse `json:"ratings"`
	Statistics OwnerStatistics       `json:"statistics"`
}

// StoreRatingsResponse is the per-store owner drill-down with a fixed-key
// 1..5 histogram.
type StoreRatingsResponse struct {
	Store              StoreResponse         `json:"store"`
	Ratings            []OwnerRatingResponse `json:"ratings"`
	RatingDistribution map[int]int           `json:"ratingDistribution"`
}

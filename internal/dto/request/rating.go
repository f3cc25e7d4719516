package request

type SubmitRatingRequest struct {
	StoreID int64 `json:"storeId" validate:"required,gt=0"`
	Rating  int   `json:"rating" validate:"required,min=1,max=5"`
}

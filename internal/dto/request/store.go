package request

// CreateStoreRequest is the admin form with full name-length rules.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=20,max=60"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
	OwnerID *int64 `json:"owner_id" validate:"omitempty,gt=0"`
}

// OwnerCreateStoreRequest is the store-owner form; only presence is
// enforced, matching the lighter rules on the owner-facing endpoint.
type OwnerCreateStoreRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	OwnerID *int64 `json:"owner_id" validate:"omitempty,gt=0"`
}

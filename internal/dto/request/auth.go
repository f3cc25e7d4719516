package request

// RegisterRequest deliberately has no role field: self-registration always
// produces a Normal User account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16,userpassword"`
	Address  string `json:"address" validate:"required,max=400"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=16,userpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

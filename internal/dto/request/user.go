package request

// CreateUserRequest is the admin-only variant: the role is caller-supplied
// but must be one of the closed set.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16,userpassword"`
	Address  string `json:"address" validate:"required,max=400"`
	Role     string `json:"role" validate:"required,oneof='Normal User' 'Store Owner' 'System Administrator'"`
}

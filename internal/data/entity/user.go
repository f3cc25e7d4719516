package entity

import "time"

// UserRole is a closed set; anything outside it must be rejected at the edges.
type UserRole string

const (
	RoleNormalUser UserRole = "Normal User"
	RoleStoreOwner UserRole = "Store Owner"
	RoleAdmin      UserRole = "System Administrator"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleNormalUser, RoleStoreOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Address      string    `db:"address"`
	Role         UserRole  `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserWithRating adds the derived average rating across the stores a
// store owner owns. Nil for users that are not store owners.
type UserWithRating struct {
	User
	OwnerRating *float64 `db:"rating"`
}

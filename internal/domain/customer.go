package domain

import "time"

// User is an identity account used for authentication.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Customer is the shop profile linked 1:1 to a User. It exists independently
// of the identity account so carts and orders reference shop data only.
type Customer struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

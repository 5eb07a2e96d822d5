package models

import "time"

// Address is a checkout address. UserID is nil for guest addresses, which
// have no owner.
type Address struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"userId,omitempty"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	CreatedAt time.Time `json:"createdAt"`
}

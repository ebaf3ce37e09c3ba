package models

import "time"

// User represents a single entry of the user registry.
// Identity fields are assigned by the store; the API only supplies
// Username and Email.
type User struct {
	// ID is the store-assigned, monotonically increasing identifier.
	ID int64 `json:"id"`

	// Username is the unique account name. Required on creation.
	Username string `json:"username"`

	// Email is the unique contact address. Required on creation.
	Email string `json:"email"`

	// CreatedAt is set by the store at insert time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

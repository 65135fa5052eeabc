package models

import "time"

// User is an account from one of the registration forms. Password always
// holds a bcrypt hash, never a plaintext credential.
type User struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	Address           string    `json:"address,omitempty"`
	Password          string    `json:"-"`
	Role              string    `json:"role"`
	Department        string    `json:"department,omitempty"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

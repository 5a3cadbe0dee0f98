package models

import "time"

// User defines an account in the 'users' table. Password holds the bcrypt
// hash; OAuth-provisioned accounts store a hash of a random credential so
// the column is never empty.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	GoogleID  *string   `json:"-" db:"google_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

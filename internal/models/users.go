package models

// User is a row of the users table. PasswordHash never leaves the server.
type User struct {
	ID           int    `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// UserRequest is the body accepted when creating or updating a user.
// Absent fields stay nil.
type UserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserInput holds the writable user columns. A nil field is bound as NULL,
// which the schema rejects.
type UserInput struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

func (in UserInput) Row(id int) *User {
	return &User{
		ID:           id,
		Username:     valueOf(in.Username),
		Email:        valueOf(in.Email),
		PasswordHash: valueOf(in.PasswordHash),
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

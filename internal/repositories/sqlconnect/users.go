package sqlconnect

import (
	"context"

	"pocketledger/internal/models"
)

const (
	insertUser           = "INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)"
	updateUser           = "UPDATE users SET username = ?, email = ?, password_hash = ? WHERE id = ?"
	deleteUser           = "DELETE FROM users WHERE id = ?"
	selectUserByID       = "SELECT id, username, email, password_hash FROM users WHERE id = ?"
	selectUserByUsername = "SELECT id, username, email, password_hash FROM users WHERE username = ?"
)

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts the row. Nil fields are bound as NULL and rejected by
// the schema.
func (s *Store) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	id, err := s.insert(ctx, "CreateUser", insertUser, in.Username, in.Email, in.PasswordHash)
	if err != nil {
		return nil, err
	}
	return in.Row(id), nil
}

// UpdateUser replaces every column of the row. It returns nil when no user
// has the given id.
func (s *Store) UpdateUser(ctx context.Context, id int, in models.UserInput) (*models.User, error) {
	matched, err := s.update(ctx, "UpdateUser", updateUser, in.Username, in.Email, in.PasswordHash, id)
	if err != nil || !matched {
		return nil, err
	}
	return in.Row(id), nil
}

func (s *Store) DeleteUser(ctx context.Context, id int) error {
	_, err := s.exec(ctx, "DeleteUser", deleteUser, id)
	return err
}

func (s *Store) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	return queryOne(ctx, s, "GetUserByID", selectUserByID, scanUser, id)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return queryOne(ctx, s, "GetUserByUsername", selectUserByUsername, scanUser, username)
}

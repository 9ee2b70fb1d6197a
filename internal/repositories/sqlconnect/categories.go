package sqlconnect

import (
	"context"

	"pocketledger/internal/models"
)

const (
	insertCategory           = "INSERT INTO categories (name, user_id) VALUES (?, ?)"
	updateCategory           = "UPDATE categories SET name = ?, user_id = ? WHERE id = ?"
	deleteCategory           = "DELETE FROM categories WHERE id = ?"
	selectCategories         = "SELECT id, name, user_id FROM categories ORDER BY id"
	selectCategoryByID       = "SELECT id, name, user_id FROM categories WHERE id = ?"
	selectCategoriesByUserID = "SELECT id, name, user_id FROM categories WHERE user_id = ? ORDER BY id"
)

func scanCategory(row rowScanner) (*models.Category, error) {
	var c models.Category
	if err := row.Scan(&c.ID, &c.Name, &c.UserID); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	id, err := s.insert(ctx, "CreateCategory", insertCategory, in.Name, in.UserID)
	if err != nil {
		return nil, err
	}
	return in.Row(id), nil
}

func (s *Store) UpdateCategory(ctx context.Context, id int, in models.CategoryInput) (*models.Category, error) {
	matched, err := s.update(ctx, "UpdateCategory", updateCategory, in.Name, in.UserID, id)
	if err != nil || !matched {
		return nil, err
	}
	return in.Row(id), nil
}

func (s *Store) DeleteCategory(ctx context.Context, id int) error {
	_, err := s.exec(ctx, "DeleteCategory", deleteCategory, id)
	return err
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	return queryAll(ctx, s, "ListCategories", selectCategories, scanCategory)
}

func (s *Store) GetCategoryByID(ctx context.Context, id int) (*models.Category, error) {
	return queryOne(ctx, s, "GetCategoryByID", selectCategoryByID, scanCategory, id)
}

func (s *Store) GetCategoriesByUserID(ctx context.Context, userID int) ([]models.Category, error) {
	return queryAll(ctx, s, "GetCategoriesByUserID", selectCategoriesByUserID, scanCategory, userID)
}

package sqlconnect

import (
	"context"

	"pocketledger/internal/models"
)

const budgetColumns = "id, user_id, category_id, amount, period_start, period_end"

const (
	insertBudget = "INSERT INTO budgets (user_id, category_id, amount, period_start, period_end) VALUES (?, ?, ?, ?, ?)"
	updateBudget = "UPDATE budgets SET user_id = ?, category_id = ?, amount = ?, period_start = ?, period_end = ? WHERE id = ?"
	deleteBudget = "DELETE FROM budgets WHERE id = ?"

	selectBudgets              = "SELECT " + budgetColumns + " FROM budgets ORDER BY id"
	selectBudgetByID           = "SELECT " + budgetColumns + " FROM budgets WHERE id = ?"
	selectBudgetsByUserID      = "SELECT " + budgetColumns + " FROM budgets WHERE user_id = ? ORDER BY id"
	selectBudgetsByCategoryID  = "SELECT " + budgetColumns + " FROM budgets WHERE category_id = ? ORDER BY id"
	selectBudgetsByPeriodStart = "SELECT " + budgetColumns + " FROM budgets WHERE period_start = ? ORDER BY id"
	selectBudgetsByPeriodEnd   = "SELECT " + budgetColumns + " FROM budgets WHERE period_end = ? ORDER BY id"
)

func scanBudget(row rowScanner) (*models.Budget, error) {
	var b models.Budget
	if err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.PeriodStart, &b.PeriodEnd); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBudget stores the row as given; a period that ends before it starts
// is left for the schema to accept or reject.
func (s *Store) CreateBudget(ctx context.Context, in models.BudgetInput) (*models.Budget, error) {
	id, err := s.insert(ctx, "CreateBudget", insertBudget,
		in.UserID, in.CategoryID, in.Amount, in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}
	return in.Row(id), nil
}

func (s *Store) UpdateBudget(ctx context.Context, id int, in models.BudgetInput) (*models.Budget, error) {
	matched, err := s.update(ctx, "UpdateBudget", updateBudget,
		in.UserID, in.CategoryID, in.Amount, in.PeriodStart, in.PeriodEnd, id)
	if err != nil || !matched {
		return nil, err
	}
	return in.Row(id), nil
}

func (s *Store) DeleteBudget(ctx context.Context, id int) error {
	_, err := s.exec(ctx, "DeleteBudget", deleteBudget, id)
	return err
}

func (s *Store) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	return queryAll(ctx, s, "ListBudgets", selectBudgets, scanBudget)
}

func (s *Store) GetBudgetByID(ctx context.Context, id int) (*models.Budget, error) {
	return queryOne(ctx, s, "GetBudgetByID", selectBudgetByID, scanBudget, id)
}

func (s *Store) GetBudgetsByUserID(ctx context.Context, userID int) ([]models.Budget, error) {
	return queryAll(ctx, s, "GetBudgetsByUserID", selectBudgetsByUserID, scanBudget, userID)
}

func (s *Store) GetBudgetsByCategoryID(ctx context.Context, categoryID int) ([]models.Budget, error) {
	return queryAll(ctx, s, "GetBudgetsByCategoryID", selectBudgetsByCategoryID, scanBudget, categoryID)
}

func (s *Store) GetBudgetsByPeriodStart(ctx context.Context, start models.Date) ([]models.Budget, error) {
	return queryAll(ctx, s, "GetBudgetsByPeriodStart", selectBudgetsByPeriodStart, scanBudget, start)
}

func (s *Store) GetBudgetsByPeriodEnd(ctx context.Context, end models.Date) ([]models.Budget, error) {
	return queryAll(ctx, s, "GetBudgetsByPeriodEnd", selectBudgetsByPeriodEnd, scanBudget, end)
}

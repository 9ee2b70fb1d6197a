package sqlconnect

import (
	"context"

	"pocketledger/internal/models"
)

const transactionColumns = "id, user_id, category_id, amount, description, transaction_date"

const (
	insertTransaction = "INSERT INTO transactions (user_id, category_id, amount, description, transaction_date) VALUES (?, ?, ?, ?, ?)"
	updateTransaction = "UPDATE transactions SET user_id = ?, category_id = ?, amount = ?, description = ?, transaction_date = ? WHERE id = ?"
	deleteTransaction = "DELETE FROM transactions WHERE id = ?"

	selectTransactions             = "SELECT " + transactionColumns + " FROM transactions ORDER BY id"
	selectTransactionByID          = "SELECT " + transactionColumns + " FROM transactions WHERE id = ?"
	selectTransactionsByUserID     = "SELECT " + transactionColumns + " FROM transactions WHERE user_id = ? ORDER BY id"
	selectTransactionsByCategoryID = "SELECT " + transactionColumns + " FROM transactions WHERE category_id = ? ORDER BY id"
)

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var t models.Transaction
	if err := row.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Amount, &t.Description, &t.TransactionDate); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) CreateTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error) {
	id, err := s.insert(ctx, "CreateTransaction", insertTransaction,
		in.UserID, in.CategoryID, in.Amount, in.Description, in.TransactionDate)
	if err != nil {
		return nil, err
	}
	return in.Row(id), nil
}

func (s *Store) UpdateTransaction(ctx context.Context, id int, in models.TransactionInput) (*models.Transaction, error) {
	matched, err := s.update(ctx, "UpdateTransaction", updateTransaction,
		in.UserID, in.CategoryID, in.Amount, in.Description, in.TransactionDate, id)
	if err != nil || !matched {
		return nil, err
	}
	return in.Row(id), nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id int) error {
	_, err := s.exec(ctx, "DeleteTransaction", deleteTransaction, id)
	return err
}

func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return queryAll(ctx, s, "ListTransactions", selectTransactions, scanTransaction)
}

func (s *Store) GetTransactionByID(ctx context.Context, id int) (*models.Transaction, error) {
	return queryOne(ctx, s, "GetTransactionByID", selectTransactionByID, scanTransaction, id)
}

func (s *Store) GetTransactionsByUserID(ctx context.Context, userID int) ([]models.Transaction, error) {
	return queryAll(ctx, s, "GetTransactionsByUserID", selectTransactionsByUserID, scanTransaction, userID)
}

func (s *Store) GetTransactionsByCategoryID(ctx context.Context, categoryID int) ([]models.Transaction, error) {
	return queryAll(ctx, s, "GetTransactionsByCategoryID", selectTransactionsByCategoryID, scanTransaction, categoryID)
}

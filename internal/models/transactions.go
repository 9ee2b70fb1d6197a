package models

import "github.com/shopspring/decimal"

type Transaction struct {
	ID              int             `json:"id" db:"id"`
	UserID          int             `json:"user_id" db:"user_id"`
	CategoryID      int             `json:"category_id" db:"category_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Description     string          `json:"description" db:"description"`
	TransactionDate Date            `json:"transaction_date" db:"transaction_date"`
}

// TransactionInput is the create/update body. Absent or null fields are
// bound as NULL.
type TransactionInput struct {
	ID              int                 `json:"id"`
	UserID          *int                `json:"user_id"`
	CategoryID      *int                `json:"category_id"`
	Amount          decimal.NullDecimal `json:"amount"`
	Description     *string             `json:"description"`
	TransactionDate *Date               `json:"transaction_date"`
}

func (in TransactionInput) Row(id int) *Transaction {
	return &Transaction{
		ID:              id,
		UserID:          valueOf(in.UserID),
		CategoryID:      valueOf(in.CategoryID),
		Amount:          in.Amount.Decimal,
		Description:     valueOf(in.Description),
		TransactionDate: valueOf(in.TransactionDate),
	}
}

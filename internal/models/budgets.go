package models

import "github.com/shopspring/decimal"

// Budget caps spending in a category over [PeriodStart, PeriodEnd].
// The ordering of the two dates is not enforced.
type Budget struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	CategoryID  int             `json:"category_id" db:"category_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	PeriodStart Date            `json:"period_start" db:"period_start"`
	PeriodEnd   Date            `json:"period_end" db:"period_end"`
}

type BudgetInput struct {
	ID          int                 `json:"id"`
	UserID      *int                `json:"user_id"`
	CategoryID  *int                `json:"category_id"`
	Amount      decimal.NullDecimal `json:"amount"`
	PeriodStart *Date               `json:"period_start"`
	PeriodEnd   *Date               `json:"period_end"`
}

func (in BudgetInput) Row(id int) *Budget {
	return &Budget{
		ID:          id,
		UserID:      valueOf(in.UserID),
		CategoryID:  valueOf(in.CategoryID),
		Amount:      in.Amount.Decimal,
		PeriodStart: valueOf(in.PeriodStart),
		PeriodEnd:   valueOf(in.PeriodEnd),
	}
}

package models

type Category struct {
	ID     int    `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	UserID int    `json:"user_id" db:"user_id"`
}

// CategoryInput is the create/update body. ID is accepted and ignored; the
// path names the row.
type CategoryInput struct {
	ID     int     `json:"id"`
	Name   *string `json:"name"`
	UserID *int    `json:"user_id"`
}

func (in CategoryInput) Row(id int) *Category {
	return &Category{ID: id, Name: valueOf(in.Name), UserID: valueOf(in.UserID)}
}

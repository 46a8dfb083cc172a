package domain

type Category struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Color     string `json:"color" db:"color"`
	IsDefault bool   `json:"isDefault" db:"is_default"`
	CreatedBy *int   `json:"createdBy" db:"created_by"`
}

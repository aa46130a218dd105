package dto

type CreateBranchRequest struct {
	Name       string `json:"name" validate:"required,max=150"`
	Address    string `json:"address" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=20"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
}

type UpdateBranchRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=150"`
	Address    *string `json:"address" validate:"omitempty,max=255"`
	City       *string `json:"city" validate:"omitempty,max=100"`
	PostalCode *string `json:"postal_code" validate:"omitempty,max=20"`
	Phone      *string `json:"phone" validate:"omitempty,max=30"`
	Active     *bool   `json:"active"`
}

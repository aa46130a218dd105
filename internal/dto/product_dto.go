package dto

import "github.com/google/uuid"

type CreateProductRequest struct {
	Name            string     `json:"name" validate:"required,max=150"`
	Category        string     `json:"category" validate:"omitempty,max=50"`
	SKU             string     `json:"sku" validate:"omitempty,max=64"`
	MembershipType  string     `json:"membership_type" validate:"omitempty,max=50"`
	Price           float64    `json:"price" validate:"required,gt=0"`
	DurationDays    int        `json:"duration_days" validate:"required,gt=0"`
	MaxUsers        *int       `json:"max_users" validate:"omitempty,gt=0"`
	AutoRenewal     bool       `json:"auto_renewal"`
	TrialPeriodDays int        `json:"trial_period_days" validate:"omitempty,gte=0"`
	BranchID        *uuid.UUID `json:"branch_id"`
}

type UpdateProductRequest struct {
	Name            *string  `json:"name" validate:"omitempty,max=150"`
	Category        *string  `json:"category" validate:"omitempty,max=50"`
	MembershipType  *string  `json:"membership_type" validate:"omitempty,max=50"`
	Price           *float64 `json:"price" validate:"omitempty,gt=0"`
	DurationDays    *int     `json:"duration_days" validate:"omitempty,gt=0"`
	MaxUsers        *int     `json:"max_users" validate:"omitempty,gt=0"`
	Active          *bool    `json:"active"`
	AutoRenewal     *bool    `json:"auto_renewal"`
	TrialPeriodDays *int     `json:"trial_period_days" validate:"omitempty,gte=0"`
}

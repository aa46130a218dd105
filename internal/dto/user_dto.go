package dto

import "github.com/google/uuid"

type CreateUserRequest struct {
	Name     string     `json:"name" validate:"required,max=150"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Phone    string     `json:"phone" validate:"omitempty,max=30"`
	Gender   string     `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Role     string     `json:"role" validate:"required,oneof=SUPER_ADMIN BRANCH_ADMIN USER INSTRUCTOR"`
	BranchID *uuid.UUID `json:"branch_id"`
}

type UpdateUserRequest struct {
	Name     *string    `json:"name" validate:"omitempty,max=150"`
	Phone    *string    `json:"phone" validate:"omitempty,max=30"`
	Gender   *string    `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Role     *string    `json:"role" validate:"omitempty,oneof=SUPER_ADMIN BRANCH_ADMIN USER INSTRUCTOR"`
	BranchID *uuid.UUID `json:"branch_id"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

package handlers

import (
	"strconv"

	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var userSortFields = []string{"created_at", "name", "email"}

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if !parseBody(c, &req) {
		return nil
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "User created", user)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	p := pagination.FromCtx(c, "created_at", userSortFields)

	filter := services.UserFilter{Role: c.Query("role")}
	if raw := c.Query("branch_id"); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid branch_id",
			})
		}
		filter.BranchID = &branchID
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid active flag",
			})
		}
		filter.Active = &active
	}

	users, total, err := h.userService.List(filter, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(users, total, p))
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	user, err := h.userService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	var req dto.UpdateUserRequest
	if !parseBody(c, &req) {
		return nil
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "User updated", user)
}

// Deactivate is the soft delete for accounts.
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	if err := h.userService.Deactivate(id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "User deactivated", nil)
}

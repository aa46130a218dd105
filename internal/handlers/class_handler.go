package handlers

import (
	"github.com/atlasfit/gym-backend/internal/authctx"
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var classSortFields = []string{"created_at", "name", "capacity"}

type ClassHandler struct {
	classService *services.ClassService
}

func NewClassHandler(classService *services.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

func (h *ClassHandler) Create(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.CreateClassRequest
	if !parseBody(c, &req) {
		return nil
	}

	class, err := h.classService.Create(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Class created", class)
}

func (h *ClassHandler) List(c *fiber.Ctx) error {
	p := pagination.FromCtx(c, "created_at", classSortFields)

	var branchID *uuid.UUID
	if raw := c.Query("branch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid branch_id",
			})
		}
		branchID = &id
	}
	activeOnly := c.QueryBool("active_only", false)

	classes, total, err := h.classService.List(branchID, activeOnly, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(classes, total, p))
}

func (h *ClassHandler) Get(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	class, err := h.classService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", class)
}

func (h *ClassHandler) Update(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	var req dto.UpdateClassRequest
	if !parseBody(c, &req) {
		return nil
	}

	class, err := h.classService.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Class updated", class)
}

func (h *ClassHandler) Delete(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	if err := h.classService.Delete(id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Class deleted", nil)
}

package handlers

import (
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

var branchSortFields = []string{"created_at", "name", "city"}

type BranchHandler struct {
	branchService *services.BranchService
}

func NewBranchHandler(branchService *services.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBranchRequest
	if !parseBody(c, &req) {
		return nil
	}

	branch, err := h.branchService.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Branch created", branch)
}

func (h *BranchHandler) List(c *fiber.Ctx) error {
	p := pagination.FromCtx(c, "created_at", branchSortFields)

	branches, total, err := h.branchService.List(p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(branches, total, p))
}

func (h *BranchHandler) Get(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	branch, err := h.branchService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", branch)
}

func (h *BranchHandler) Update(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	var req dto.UpdateBranchRequest
	if !parseBody(c, &req) {
		return nil
	}

	branch, err := h.branchService.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Branch updated", branch)
}

func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	if err := h.branchService.Delete(id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Branch deleted", nil)
}

package handlers

import (
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var productSortFields = []string{"created_at", "name", "price", "duration_days"}

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if !parseBody(c, &req) {
		return nil
	}

	product, err := h.productService.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Product created", product)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	p := pagination.FromCtx(c, "created_at", productSortFields)

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

	products, total, err := h.productService.List(branchID, activeOnly, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(products, total, p))
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	product, err := h.productService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	var req dto.UpdateProductRequest
	if !parseBody(c, &req) {
		return nil
	}

	product, err := h.productService.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Product updated", product)
}

func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	if err := h.productService.Deactivate(id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Product deactivated", nil)
}

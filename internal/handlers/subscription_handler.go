package handlers

import (
	"github.com/atlasfit/gym-backend/internal/authctx"
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

var subscriptionSortFields = []string{"created_at", "day_of_week", "start_time"}

type SubscriptionHandler struct {
	subscriptionService *services.ClassSubscriptionService
}

func NewSubscriptionHandler(subscriptionService *services.ClassSubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.CreateSubscriptionRequest
	if !parseBody(c, &req) {
		return nil
	}

	subscription, err := h.subscriptionService.Create(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Subscription created", subscription)
}

func (h *SubscriptionHandler) ListMine(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}
	p := pagination.FromCtx(c, "created_at", subscriptionSortFields)

	subscriptions, total, err := h.subscriptionService.ListByUser(userID, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(subscriptions, total, p))
}

func (h *SubscriptionHandler) ListByClass(c *fiber.Ctx) error {
	classID, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}
	p := pagination.FromCtx(c, "day_of_week", subscriptionSortFields)

	subscriptions, total, err := h.subscriptionService.ListByClass(classID, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(subscriptions, total, p))
}

func (h *SubscriptionHandler) Deactivate(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	sub, err := h.subscriptionService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	if err := requireOwner(c, sub.UserID); err != nil {
		return fail(c, err)
	}

	if err := h.subscriptionService.Deactivate(id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Subscription deactivated", nil)
}

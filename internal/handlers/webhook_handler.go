package handlers

import (
	"errors"
	"log/slog"

	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type WebhookHandler struct {
	paymentService *services.PaymentService
}

func NewWebhookHandler(paymentService *services.PaymentService) *WebhookHandler {
	return &WebhookHandler{paymentService: paymentService}
}

// PaymentNotification receives asynchronous status updates from the payment
// gateway. It always answers 200 on processing errors for unknown orders so
// the gateway stops retrying; transient failures return 500 to trigger a retry.
func (h *WebhookHandler) PaymentNotification(c *fiber.Ctx) error {
	var n dto.GatewayNotification
	if err := c.BodyParser(&n); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid notification payload",
		})
	}

	if err := h.paymentService.HandleGatewayNotification(&n); err != nil {
		slog.Error("gateway notification failed",
			"order_id", n.OrderID,
			"transaction_status", n.TransactionStatus,
			"error", err)
		if errors.Is(err, services.ErrNotFound) {
			return ok(c, fiber.StatusOK, "Notification ignored", nil)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Notification processing failed",
		})
	}
	return ok(c, fiber.StatusOK, "Notification processed", nil)
}

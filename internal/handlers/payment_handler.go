package handlers

import (
	"github.com/atlasfit/gym-backend/internal/authctx"
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

var paymentSortFields = []string{"created_at", "amount", "status"}

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if !parseBody(c, &req) {
		return nil
	}

	payment, err := h.paymentService.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Payment created", payment)
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	payment, err := h.paymentService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	if err := requireOwner(c, payment.UserID); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", payment)
}

func (h *PaymentHandler) ListMine(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}
	p := pagination.FromCtx(c, "created_at", paymentSortFields)

	payments, total, err := h.paymentService.ListByUser(userID, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(payments, total, p))
}

func (h *PaymentHandler) ListByUser(c *fiber.Ctx) error {
	userID, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}
	p := pagination.FromCtx(c, "created_at", paymentSortFields)

	payments, total, err := h.paymentService.ListByUser(userID, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(payments, total, p))
}

func (h *PaymentHandler) MarkCompleted(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	var req dto.CompletePaymentRequest
	if !parseBody(c, &req) {
		return nil
	}

	payment, err := h.paymentService.MarkCompleted(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Payment completed", payment)
}

func (h *PaymentHandler) MarkFailed(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	payment, err := h.paymentService.MarkFailed(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Payment marked failed", payment)
}

func (h *PaymentHandler) Cancel(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	payment, err := h.paymentService.CancelPayment(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Payment cancelled", payment)
}

func (h *PaymentHandler) Refund(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	var req dto.RefundPaymentRequest
	if !parseBody(c, &req) {
		return nil
	}

	payment, err := h.paymentService.Refund(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Refund processed", payment)
}

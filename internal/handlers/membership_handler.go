package handlers

import (
	"github.com/atlasfit/gym-backend/internal/authctx"
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var membershipSortFields = []string{"created_at", "start_date", "end_date", "status"}

type MembershipHandler struct {
	membershipService *services.MembershipService
}

func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

func (h *MembershipHandler) Assign(c *fiber.Ctx) error {
	assignedBy, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.AssignMembershipRequest
	if !parseBody(c, &req) {
		return nil
	}

	membership, err := h.membershipService.Assign(assignedBy, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Membership assigned", membership)
}

func (h *MembershipHandler) Get(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	membership, err := h.membershipService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	if err := requireOwner(c, membership.UserID); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", membership)
}

func (h *MembershipHandler) ListMine(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}
	p := pagination.FromCtx(c, "created_at", membershipSortFields)

	memberships, total, err := h.membershipService.ListByUser(userID, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(memberships, total, p))
}

func (h *MembershipHandler) ListByUser(c *fiber.Ctx) error {
	userID, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}
	p := pagination.FromCtx(c, "created_at", membershipSortFields)

	memberships, total, err := h.membershipService.ListByUser(userID, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(memberships, total, p))
}

func (h *MembershipHandler) Extend(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	var req dto.ExtendMembershipRequest
	if !parseBody(c, &req) {
		return nil
	}

	membership, err := h.membershipService.Extend(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Membership extended", membership)
}

func (h *MembershipHandler) Activate(c *fiber.Ctx) error {
	return h.setStatus(c, h.membershipService.Activate, "Membership activated")
}

func (h *MembershipHandler) Cancel(c *fiber.Ctx) error {
	return h.setStatus(c, h.membershipService.Cancel, "Membership cancelled")
}

func (h *MembershipHandler) Suspend(c *fiber.Ctx) error {
	return h.setStatus(c, h.membershipService.Suspend, "Membership suspended")
}

func (h *MembershipHandler) Expire(c *fiber.Ctx) error {
	return h.setStatus(c, h.membershipService.Expire, "Membership expired")
}

func (h *MembershipHandler) setStatus(c *fiber.Ctx, op func(id uuid.UUID, reason string) (*dto.MembershipResponse, error), msg string) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	var req dto.MembershipStatusRequest
	if !parseBody(c, &req) {
		return nil
	}

	membership, err := op(id, req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, msg, membership)
}

func (h *MembershipHandler) AddPayment(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	var req dto.AddMembershipPaymentRequest
	if !parseBody(c, &req) {
		return nil
	}

	payment, err := h.membershipService.AddPayment(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Payment recorded", payment)
}

package handlers

import (
	"github.com/atlasfit/gym-backend/internal/authctx"
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

var reservationSortFields = []string{"created_at", "reservation_date", "status"}

type ReservationHandler struct {
	reservationService *services.ReservationService
}

func NewReservationHandler(reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.CreateReservationRequest
	if !parseBody(c, &req) {
		return nil
	}

	reservation, err := h.reservationService.Create(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Reservation created", reservation)
}

// ListMine returns the caller's own reservations.
func (h *ReservationHandler) ListMine(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}
	p := pagination.FromCtx(c, "created_at", reservationSortFields)

	reservations, total, err := h.reservationService.ListByUser(userID, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(reservations, total, p))
}

// ListByUser returns a given user's reservations, for back-office views.
func (h *ReservationHandler) ListByUser(c *fiber.Ctx) error {
	userID, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}
	p := pagination.FromCtx(c, "created_at", reservationSortFields)

	reservations, total, err := h.reservationService.ListByUser(userID, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(reservations, total, p))
}

func (h *ReservationHandler) ListBySchedule(c *fiber.Ctx) error {
	scheduleID, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}
	p := pagination.FromCtx(c, "created_at", reservationSortFields)

	reservations, total, err := h.reservationService.ListBySchedule(scheduleID, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(reservations, total, p))
}

func (h *ReservationHandler) Get(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	reservation, err := h.reservationService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	if err := requireOwner(c, reservation.UserID); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", reservation)
}

func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	existing, err := h.reservationService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	if err := requireOwner(c, existing.UserID); err != nil {
		return fail(c, err)
	}

	reservation, err := h.reservationService.Cancel(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Reservation cancelled", reservation)
}

func (h *ReservationHandler) MarkAttended(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	reservation, err := h.reservationService.MarkAttended(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Attendance recorded", reservation)
}

func (h *ReservationHandler) MarkNoShow(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	reservation, err := h.reservationService.MarkNoShow(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "No-show recorded", reservation)
}

func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	if err := h.reservationService.Delete(id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Reservation deleted", nil)
}

package handlers

import (
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/pagination"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

var scheduleSortFields = []string{"created_at", "start_time"}

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if !parseBody(c, &req) {
		return nil
	}

	schedule, err := h.scheduleService.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Schedule created", schedule)
}

func (h *ScheduleHandler) ListByClass(c *fiber.Ctx) error {
	classID, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}
	p := pagination.FromCtx(c, "start_time", scheduleSortFields)

	schedules, total, err := h.scheduleService.ListByClass(classID, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(pagination.NewPage(schedules, total, p))
}

func (h *ScheduleHandler) Get(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	schedule, err := h.scheduleService.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", schedule)
}

func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	var req dto.UpdateScheduleRequest
	if !parseBody(c, &req) {
		return nil
	}

	schedule, err := h.scheduleService.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Schedule updated", schedule)
}

func (h *ScheduleHandler) Deactivate(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	if err := h.scheduleService.Deactivate(id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Schedule deactivated", nil)
}

// AvailableSpots reports free capacity for one schedule occurrence.
func (h *ScheduleHandler) AvailableSpots(c *fiber.Ctx) error {
	id, okParam := paramID(c, "id")
	if !okParam {
		return nil
	}

	spots, err := h.scheduleService.AvailableSpots(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", spots)
}

package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/atlasfit/gym-backend/internal/authctx"
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/atlasfit/gym-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// fail maps service error kinds to HTTP statuses. Unknown errors become an
// opaque 500; the detail goes to the log, not the client.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrNotFound):
		status, message = fiber.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrInvalidArgument):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrConflict):
		status, message = fiber.StatusConflict, err.Error()
	case errors.Is(err, services.ErrEmailTaken):
		status, message = fiber.StatusConflict, err.Error()
	case errors.Is(err, services.ErrUnauthorized):
		status, message = fiber.StatusForbidden, "Insufficient permissions"
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrAccountDisabled):
		status, message = fiber.StatusUnauthorized, err.Error()
	default:
		slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Success: false,
		Message: message,
	})
}

// parseBody decodes and validates a request DTO, writing the 400 response
// itself. The bool reports whether the handler should continue.
func parseBody(c *fiber.Ctx, out interface{}) bool {
	if err := c.BodyParser(out); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
		return false
	}
	if err := validation.Struct(out); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Fields:  validation.FieldErrors(err),
		})
		return false
	}
	return true
}

// requireOwner restricts members to their own records. Staff roles pass; the
// route-level Authorize middleware already gated them.
func requireOwner(c *fiber.Ctx, ownerID uuid.UUID) error {
	if authctx.GetRole(c) != models.RoleUser {
		return nil
	}
	callerID, err := authctx.GetUserID(c)
	if err != nil || callerID != ownerID {
		return fmt.Errorf("record belongs to another user: %w", services.ErrUnauthorized)
	}
	return nil
}

// paramID parses the named UUID path parameter, writing the 400 response on
// failure.
func paramID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid " + name,
		})
		return uuid.Nil, false
	}
	return id, true
}

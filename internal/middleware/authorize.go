package middleware

import (
	"github.com/atlasfit/gym-backend/internal/authctx"
	"github.com/atlasfit/gym-backend/internal/authz"
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// Authorize gates a route on the permission table. The JWT middleware must
// run first so the role claim is available.
func Authorize(resource authz.Resource, action authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := authctx.GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Message: "Unauthorized",
			})
		}
		if !authz.Can(role, resource, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Message: "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/atlasfit/gym-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func withClaims(role string, userID uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
			"sub":  userID.String(),
			"role": role,
		}})
		return c.Next()
	}
}

func TestRequireOwner(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name   string
		role   string
		caller uuid.UUID
		want   int
	}{
		{"member on own record", models.RoleUser, owner, fiber.StatusOK},
		{"member on another member's record", models.RoleUser, stranger, fiber.StatusForbidden},
		{"branch admin on any record", models.RoleBranchAdmin, stranger, fiber.StatusOK},
		{"instructor on any record", models.RoleInstructor, stranger, fiber.StatusOK},
		{"super admin on any record", models.RoleSuperAdmin, stranger, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", withClaims(tt.role, tt.caller), func(c *fiber.Ctx) error {
				if err := requireOwner(c, owner); err != nil {
					return fail(c, err)
				}
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

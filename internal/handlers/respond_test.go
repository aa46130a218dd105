package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func TestFailStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", services.ErrNotFound, fiber.StatusNotFound},
		{"invalid argument", services.ErrInvalidArgument, fiber.StatusBadRequest},
		{"conflict", services.ErrConflict, fiber.StatusConflict},
		{"email taken", services.ErrEmailTaken, fiber.StatusConflict},
		{"ownership denial", services.ErrUnauthorized, fiber.StatusForbidden},
		{"bad credentials", services.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"bad refresh token", services.ErrInvalidToken, fiber.StatusUnauthorized},
		{"disabled account", services.ErrAccountDisabled, fiber.StatusUnauthorized},
		{"unknown", fiber.ErrTeapot, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return fail(c, tt.err)
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

func TestParamIDRejectsMalformedUUID(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		if _, okParam := paramID(c, "id"); !okParam {
			return nil
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/not-a-uuid", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/5cbd1a9f-2f2c-4a0a-9a1d-1c9f59a1b2c3", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

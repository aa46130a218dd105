package handlers

import (
	"github.com/atlasfit/gym-backend/internal/authctx"
	"github.com/atlasfit/gym-backend/internal/dto"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if !parseBody(c, &req) {
		return nil
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Account created", resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if !parseBody(c, &req) {
		return nil
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Logged in", resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if !parseBody(c, &req) {
		return nil
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Token refreshed", resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if !parseBody(c, &req) {
		return nil
	}

	if err := h.authService.Logout(&req); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Logged out", nil)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", user)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.ChangePasswordRequest
	if !parseBody(c, &req) {
		return nil
	}

	if err := h.userService.ChangePassword(userID, &req); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Password changed", nil)
}

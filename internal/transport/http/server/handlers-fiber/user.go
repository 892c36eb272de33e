package handlers_fiber

import (
	"net/http"

	"team-focus-service/internal/mapper"
	"team-focus-service/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostRegister creates an account and returns it with its bearer token.
func (h *Handler) PostRegister(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	usr, err := h.uc.Register(c.Context(), body.Name, body.Username, body.Password)
	if err != nil {
		h.log.Errorw("failed to register user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUserWithToken(*usr)})
}

// PostLogin verifies credentials and returns the account with its token.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	usr, err := h.uc.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUserWithToken(*usr)})
}

// GetMe returns the token's owner.
func (h *Handler) GetMe(c *fiber.Ctx) error {
	usr, err := h.uc.Authenticate(c.Context(), bearerToken(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOUser(*usr))
}

// PatchMe updates profile fields of the token's owner.
func (h *Handler) PatchMe(c *fiber.Ctx) error {
	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	usr, err := h.uc.UpdateProfile(c.Context(), bearerToken(c), body.Name, body.Username, body.Password)
	if err != nil {
		h.log.Errorw("failed to update profile", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOUser(*usr))
}

// DeleteMe removes the token's owner.
func (h *Handler) DeleteMe(c *fiber.Ctx) error {
	if err := h.uc.DeleteAccount(c.Context(), bearerToken(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"team-focus-service/internal/entities"
	"team-focus-service/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.CodeInvalidInput
		msg = err.Error()
	case errors.Is(err, entities.ErrUnauthenticated):
		status = http.StatusUnauthorized
		code = dto.CodeUnauthenticated
		msg = "invalid or missing token"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = dto.CodeForbidden
		msg = "not allowed"
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrMembershipNotFound),
		errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrCommentNotFound):
		status = http.StatusNotFound
		code = dto.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrUsernameTaken):
		status = http.StatusConflict
		code = dto.CodeConflict
		msg = "username already exists"
	case errors.Is(err, entities.ErrAlreadyMember):
		status = http.StatusConflict
		code = dto.CodeConflict
		msg = "user is already a member"
	case errors.Is(err, entities.ErrSessionActive):
		status = http.StatusConflict
		code = dto.CodeConflict
		msg = "team already has an active session"
	case errors.Is(err, entities.ErrNoActiveSession):
		status = http.StatusConflict
		code = dto.CodeConflict
		msg = "team has no active session"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, entities.ErrInvalidArgument
	}
	return id, nil
}

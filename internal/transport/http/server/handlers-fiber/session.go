package handlers_fiber

import (
	"net/http"

	"team-focus-service/internal/entities"
	"team-focus-service/internal/mapper"
	"team-focus-service/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostStartSession opens a focus session for the team.
func (h *Handler) PostStartSession(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}

	var body dto.StartSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	s, err := h.uc.StartSession(c.Context(), bearerToken(c), teamID, body.GoalMinutes)
	if err != nil {
		h.log.Errorw("failed to start session", "error", err.Error(), "team_id", teamID)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Session dto.Session `json:"session"`
	}{Session: mapper.ToDTOSession(*s)})
}

// PostEndSession closes the team's open session.
func (h *Handler) PostEndSession(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}

	s, err := h.uc.EndSession(c.Context(), bearerToken(c), teamID)
	if err != nil {
		h.log.Errorw("failed to end session", "error", err.Error(), "team_id", teamID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Session dto.Session `json:"session"`
	}{Session: mapper.ToDTOSession(*s)})
}

// GetSessions lists the team's sessions ordered by start time.
func (h *Handler) GetSessions(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}

	order := entities.SortOrder(c.Query("order", string(entities.OrderAsc)))
	sessions, err := h.uc.Sessions(c.Context(), bearerToken(c), teamID, order)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		TeamID   int64         `json:"team_id"`
		Sessions []dto.Session `json:"sessions"`
	}{TeamID: teamID, Sessions: mapper.ToDTOSessionList(sessions)})
}

package handlers_fiber

import (
	"net/http"

	"team-focus-service/internal/mapper"
	"team-focus-service/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetMembers lists the team's users.
func (h *Handler) GetMembers(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}

	members, err := h.uc.Members(c.Context(), bearerToken(c), teamID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		TeamID  int64      `json:"team_id"`
		Members []dto.User `json:"members"`
	}{TeamID: teamID, Members: mapper.ToDTOUserList(members)})
}

// PostMember links a user into the caller's team.
func (h *Handler) PostMember(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}

	var body dto.AddMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	link, err := h.uc.AddMember(c.Context(), bearerToken(c), teamID, body.UserID)
	if err != nil {
		h.log.Errorw("failed to add member", "error", err.Error(), "team_id", teamID)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Membership dto.Membership `json:"membership"`
	}{Membership: mapper.ToDTOMembership(*link)})
}

// DeleteMember unlinks a user from the caller's team.
func (h *Handler) DeleteMember(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}
	userID, err := paramID(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}

	link, err := h.uc.RemoveMember(c.Context(), bearerToken(c), teamID, userID)
	if err != nil {
		h.log.Errorw("failed to remove member", "error", err.Error(), "team_id", teamID, "user_id", userID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Membership dto.Membership `json:"membership"`
	}{Membership: mapper.ToDTOMembership(*link)})
}

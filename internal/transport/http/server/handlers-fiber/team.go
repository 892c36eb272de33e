package handlers_fiber

import (
	"net/http"

	"team-focus-service/internal/mapper"
	"team-focus-service/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostTeam creates a team; the caller becomes its first member.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body dto.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	team, err := h.uc.CreateTeam(c.Context(), bearerToken(c), body.Name, body.Description)
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Team dto.Team `json:"team"`
	}{Team: mapper.ToDTOTeam(*team)})
}

// GetMyTeams lists teams of the token's owner.
func (h *Handler) GetMyTeams(c *fiber.Ctx) error {
	teams, err := h.uc.MyTeams(c.Context(), bearerToken(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Teams []dto.Team `json:"teams"`
	}{Teams: mapper.ToDTOTeamList(teams)})
}

// GetTeam returns a team, members only.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}

	team, err := h.uc.Team(c.Context(), bearerToken(c), teamID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeam(*team))
}

// GetTeamStats returns the team's aggregated focus history.
func (h *Handler) GetTeamStats(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}

	stats, err := h.uc.TeamStats(c.Context(), bearerToken(c), teamID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamStats(stats))
}

// GetInvitationLink returns the team's shareable join link.
func (h *Handler) GetInvitationLink(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}

	link, err := h.uc.InvitationLink(c.Context(), bearerToken(c), teamID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.InvitationLinkResponse{Link: link})
}

// PostJoinByInvitation redeems an invitation uuid for the caller.
func (h *Handler) PostJoinByInvitation(c *fiber.Ctx) error {
	team, err := h.uc.JoinByInvitation(c.Context(), bearerToken(c), c.Params("invite_uuid"))
	if err != nil {
		h.log.Errorw("failed to join by invitation", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Team dto.Team `json:"team"`
	}{Team: mapper.ToDTOTeam(*team)})
}

// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"team-focus-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the usecase layer over HTTP.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register attaches all routes to the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/auth/register", h.PostRegister)
	app.Post("/auth/login", h.PostLogin)

	app.Get("/users/me", h.GetMe)
	app.Patch("/users/me", h.PatchMe)
	app.Delete("/users/me", h.DeleteMe)

	app.Post("/teams", h.PostTeam)
	app.Get("/teams", h.GetMyTeams)
	app.Get("/teams/:team_id", h.GetTeam)
	app.Get("/teams/:team_id/stats", h.GetTeamStats)
	app.Get("/teams/:team_id/invite", h.GetInvitationLink)
	app.Post("/invites/:invite_uuid/join", h.PostJoinByInvitation)

	app.Get("/teams/:team_id/members", h.GetMembers)
	app.Post("/teams/:team_id/members", h.PostMember)
	app.Delete("/teams/:team_id/members/:user_id", h.DeleteMember)

	app.Post("/teams/:team_id/sessions", h.PostStartSession)
	app.Post("/teams/:team_id/sessions/end", h.PostEndSession)
	app.Get("/teams/:team_id/sessions", h.GetSessions)

	app.Post("/teams/:team_id/tasks", h.PostTask)
	app.Get("/teams/:team_id/tasks", h.GetTasks)
	app.Patch("/teams/:team_id/tasks/:task_id", h.PatchTask)
	app.Post("/teams/:team_id/tasks/:task_id/comments", h.PostComment)
	app.Get("/teams/:team_id/tasks/:task_id/comments", h.GetComments)
	app.Patch("/comments/:comment_id", h.PatchComment)
	app.Delete("/comments/:comment_id", h.DeleteComment)
}

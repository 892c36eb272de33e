package handlers_fiber

import (
	"net/http"

	"team-focus-service/internal/mapper"
	"team-focus-service/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostTask creates a task in the caller's team.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}

	var body dto.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	task, err := h.uc.CreateTask(c.Context(), bearerToken(c), teamID, body.Title, body.Description)
	if err != nil {
		h.log.Errorw("failed to create task", "error", err.Error(), "team_id", teamID)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Task dto.Task `json:"task"`
	}{Task: mapper.ToDTOTask(*task)})
}

// GetTasks lists the team's tasks.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	teamID, err := paramID(c, "team_id")
	if err != nil {
		return writeError(c, err)
	}

	tasks, err := h.uc.Tasks(c.Context(), bearerToken(c), teamID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		TeamID int64      `json:"team_id"`
		Tasks  []dto.Task `json:"tasks"`
	}{TeamID: teamID, Tasks: mapper.ToDTOTaskList(tasks)})
}

// PatchTask flips a task's done flag.
func (h *Handler) PatchTask(c *fiber.Ctx) error {
	taskID, err := paramID(c, "task_id")
	if err != nil {
		return writeError(c, err)
	}

	var body dto.UpdateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	task, err := h.uc.SetTaskDone(c.Context(), bearerToken(c), taskID, body.Done)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Task dto.Task `json:"task"`
	}{Task: mapper.ToDTOTask(*task)})
}

// PostComment attaches a comment to a task.
func (h *Handler) PostComment(c *fiber.Ctx) error {
	taskID, err := paramID(c, "task_id")
	if err != nil {
		return writeError(c, err)
	}

	var body dto.CommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	comment, err := h.uc.AddComment(c.Context(), bearerToken(c), taskID, body.Body)
	if err != nil {
		h.log.Errorw("failed to add comment", "error", err.Error(), "task_id", taskID)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Comment dto.Comment `json:"comment"`
	}{Comment: mapper.ToDTOComment(*comment)})
}

// GetComments lists a task's comments.
func (h *Handler) GetComments(c *fiber.Ctx) error {
	taskID, err := paramID(c, "task_id")
	if err != nil {
		return writeError(c, err)
	}

	comments, err := h.uc.Comments(c.Context(), bearerToken(c), taskID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		TaskID   int64         `json:"task_id"`
		Comments []dto.Comment `json:"comments"`
	}{TaskID: taskID, Comments: mapper.ToDTOCommentList(comments)})
}

// PatchComment rewrites a comment's body, author only.
func (h *Handler) PatchComment(c *fiber.Ctx) error {
	commentID, err := paramID(c, "comment_id")
	if err != nil {
		return writeError(c, err)
	}

	var body dto.CommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	comment, err := h.uc.UpdateComment(c.Context(), bearerToken(c), commentID, body.Body)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Comment dto.Comment `json:"comment"`
	}{Comment: mapper.ToDTOComment(*comment)})
}

// DeleteComment removes a comment, author only.
func (h *Handler) DeleteComment(c *fiber.Ctx) error {
	commentID, err := paramID(c, "comment_id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteComment(c.Context(), bearerToken(c), commentID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

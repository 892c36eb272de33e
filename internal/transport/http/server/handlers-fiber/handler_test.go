package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"team-focus-service/internal/notifier"
	"team-focus-service/internal/repository/memory"
	"team-focus-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	uc := usecase.New(
		zap.NewNop().Sugar(),
		context.Background(),
		memory.New(),
		notifier.NewNoop(),
		"http://example.test/invites",
		time.Second,
	)

	app := fiber.New()
	NewHandler(zap.NewNop().Sugar(), uc).Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]json.RawMessage) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	fields := map[string]json.RawMessage{}
	if len(payload) > 0 {
		require.NoError(t, json.Unmarshal(payload, &fields))
	}
	return resp.StatusCode, fields
}

func registerUser(t *testing.T, app *fiber.App, username string) (int64, string) {
	t.Helper()

	status, fields := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     username,
		"username": username,
		"password": "secret-" + username,
	})
	require.Equal(t, http.StatusCreated, status)

	var usr struct {
		UserID int64  `json:"user_id"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(fields["user"], &usr))
	require.NotEmpty(t, usr.Token)
	return usr.UserID, usr.Token
}

func createTeam(t *testing.T, app *fiber.App, token, name string) int64 {
	t.Helper()

	status, fields := doJSON(t, app, http.MethodPost, "/teams", token, map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, status)

	var team struct {
		TeamID int64 `json:"team_id"`
	}
	require.NoError(t, json.Unmarshal(fields["team"], &team))
	return team.TeamID
}

func errorCode(t *testing.T, fields map[string]json.RawMessage) string {
	t.Helper()

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(fields["error"], &body))
	return body.Code
}

func TestHandler_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)
	_, token := registerUser(t, app, "alice")

	status, fields := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "alice",
		"password": "secret-alice",
	})
	require.Equal(t, http.StatusOK, status)

	var usr struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(fields["user"], &usr))
	require.Equal(t, token, usr.Token)

	status, fields = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "UNAUTHENTICATED", errorCode(t, fields))
}

func TestHandler_RegisterDuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "alice")

	status, fields := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Other Alice",
		"username": "alice",
		"password": "pw",
	})
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "CONFLICT", errorCode(t, fields))
}

func TestHandler_MissingToken(t *testing.T) {
	app := newTestApp(t)

	status, fields := doJSON(t, app, http.MethodGet, "/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "UNAUTHENTICATED", errorCode(t, fields))
}

func TestHandler_NonMemberForbidden(t *testing.T) {
	app := newTestApp(t)
	_, alice := registerUser(t, app, "alice")
	_, bob := registerUser(t, app, "bob")
	teamID := createTeam(t, app, alice, "focus")

	status, fields := doJSON(t, app, http.MethodGet, fmt.Sprintf("/teams/%d", teamID), bob, nil)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "FORBIDDEN", errorCode(t, fields))
}

func TestHandler_UnknownTeamNotFound(t *testing.T) {
	app := newTestApp(t)
	_, alice := registerUser(t, app, "alice")

	status, fields := doJSON(t, app, http.MethodGet, "/teams/424242", alice, nil)
	// membership is checked first, so a stranger to a missing team sees 403
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "FORBIDDEN", errorCode(t, fields))

	status, fields = doJSON(t, app, http.MethodPost, "/invites/no-such-uuid/join", alice, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "NOT_FOUND", errorCode(t, fields))
}

func TestHandler_MembershipFlow(t *testing.T) {
	app := newTestApp(t)
	aliceID, alice := registerUser(t, app, "alice")
	bobID, bob := registerUser(t, app, "bob")
	teamID := createTeam(t, app, alice, "focus")

	status, fields := doJSON(t, app, http.MethodPost, fmt.Sprintf("/teams/%d/members", teamID), alice,
		map[string]int64{"user_id": bobID})
	require.Equal(t, http.StatusCreated, status)

	var link struct {
		TeamID int64 `json:"team_id"`
		UserID int64 `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(fields["membership"], &link))
	require.Equal(t, teamID, link.TeamID)
	require.Equal(t, bobID, link.UserID)

	status, fields = doJSON(t, app, http.MethodPost, fmt.Sprintf("/teams/%d/members", teamID), alice,
		map[string]int64{"user_id": bobID})
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "CONFLICT", errorCode(t, fields))

	status, fields = doJSON(t, app, http.MethodGet, fmt.Sprintf("/teams/%d/members", teamID), bob, nil)
	require.Equal(t, http.StatusOK, status)
	var members []struct {
		UserID int64 `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(fields["members"], &members))
	require.Len(t, members, 2)
	require.Equal(t, aliceID, members[0].UserID)
	require.Equal(t, bobID, members[1].UserID)

	status, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/teams/%d/members/%d", teamID, bobID), alice, nil)
	require.Equal(t, http.StatusOK, status)

	status, fields = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/teams/%d/members/%d", teamID, bobID), alice, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "NOT_FOUND", errorCode(t, fields))
}

func TestHandler_InvitationFlow(t *testing.T) {
	app := newTestApp(t)
	_, alice := registerUser(t, app, "alice")
	_, bob := registerUser(t, app, "bob")
	teamID := createTeam(t, app, alice, "focus")

	status, fields := doJSON(t, app, http.MethodGet, fmt.Sprintf("/teams/%d/invite", teamID), alice, nil)
	require.Equal(t, http.StatusOK, status)
	var invite struct {
		Link string `json:"link"`
	}
	raw, err := json.Marshal(fields)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &invite))
	require.Contains(t, invite.Link, "http://example.test/invites/")

	inviteUUID := invite.Link[len("http://example.test/invites/"):]
	status, fields = doJSON(t, app, http.MethodPost, "/invites/"+inviteUUID+"/join", bob, nil)
	require.Equal(t, http.StatusOK, status)

	var team struct {
		TeamID int64 `json:"team_id"`
	}
	require.NoError(t, json.Unmarshal(fields["team"], &team))
	require.Equal(t, teamID, team.TeamID)

	status, fields = doJSON(t, app, http.MethodPost, "/invites/"+inviteUUID+"/join", bob, nil)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "CONFLICT", errorCode(t, fields))
}

func TestHandler_SessionFlow(t *testing.T) {
	app := newTestApp(t)
	_, alice := registerUser(t, app, "alice")
	teamID := createTeam(t, app, alice, "focus")
	sessionsPath := fmt.Sprintf("/teams/%d/sessions", teamID)

	status, fields := doJSON(t, app, http.MethodPost, sessionsPath, alice, map[string]int{"goal_minutes": 0})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "INVALID_INPUT", errorCode(t, fields))

	status, _ = doJSON(t, app, http.MethodPost, sessionsPath, alice, map[string]int{"goal_minutes": 30})
	require.Equal(t, http.StatusCreated, status)

	status, fields = doJSON(t, app, http.MethodPost, sessionsPath, alice, map[string]int{"goal_minutes": 45})
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "CONFLICT", errorCode(t, fields))

	status, fields = doJSON(t, app, http.MethodPost, sessionsPath+"/end", alice, nil)
	require.Equal(t, http.StatusOK, status)
	var ended struct {
		EndedAt *time.Time `json:"ended_at"`
	}
	require.NoError(t, json.Unmarshal(fields["session"], &ended))
	require.NotNil(t, ended.EndedAt)

	status, fields = doJSON(t, app, http.MethodPost, sessionsPath+"/end", alice, nil)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "CONFLICT", errorCode(t, fields))

	status, _ = doJSON(t, app, http.MethodPost, sessionsPath, alice, map[string]int{"goal_minutes": 45})
	require.Equal(t, http.StatusCreated, status)

	status, fields = doJSON(t, app, http.MethodGet, sessionsPath+"?order=desc", alice, nil)
	require.Equal(t, http.StatusOK, status)
	var sessions []struct {
		GoalMinutes int `json:"goal_minutes"`
	}
	require.NoError(t, json.Unmarshal(fields["sessions"], &sessions))
	require.Len(t, sessions, 2)
	require.Equal(t, 45, sessions[0].GoalMinutes)
}

func TestHandler_BadTeamID(t *testing.T) {
	app := newTestApp(t)
	_, alice := registerUser(t, app, "alice")

	status, fields := doJSON(t, app, http.MethodGet, "/teams/abc/sessions", alice, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "INVALID_INPUT", errorCode(t, fields))
}

func TestHandler_CommentOwnership(t *testing.T) {
	app := newTestApp(t)
	_, alice := registerUser(t, app, "alice")
	bobID, bob := registerUser(t, app, "bob")
	teamID := createTeam(t, app, alice, "focus")

	status, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/teams/%d/members", teamID), alice,
		map[string]int64{"user_id": bobID})
	require.Equal(t, http.StatusCreated, status)

	status, fields := doJSON(t, app, http.MethodPost, fmt.Sprintf("/teams/%d/tasks", teamID), alice,
		map[string]string{"title": "write tests"})
	require.Equal(t, http.StatusCreated, status)
	var task struct {
		TaskID int64 `json:"task_id"`
	}
	require.NoError(t, json.Unmarshal(fields["task"], &task))

	status, fields = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/teams/%d/tasks/%d/comments", teamID, task.TaskID), alice,
		map[string]string{"body": "on it"})
	require.Equal(t, http.StatusCreated, status)
	var comment struct {
		CommentID int64 `json:"comment_id"`
	}
	require.NoError(t, json.Unmarshal(fields["comment"], &comment))

	status, fields = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/comments/%d", comment.CommentID), bob,
		map[string]string{"body": "hijacked"})
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "FORBIDDEN", errorCode(t, fields))

	status, _ = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/comments/%d", comment.CommentID), alice,
		map[string]string{"body": "done"})
	require.Equal(t, http.StatusOK, status)
}

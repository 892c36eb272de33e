package memory

import (
	"context"
	"sync"
	"testing"

	"team-focus-service/internal/entities"

	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, m *Memory, username string) *entities.User {
	t.Helper()
	usr, err := m.CreateUser(context.Background(), entities.User{
		Name:     username,
		Username: username,
		Token:    "tok-" + username,
	})
	require.NoError(t, err)
	return usr
}

func seedTeam(t *testing.T, m *Memory, name string) *entities.Team {
	t.Helper()
	team, err := m.CreateTeam(context.Background(), entities.Team{
		Name:       name,
		InviteUUID: "invite-" + name,
	})
	require.NoError(t, err)
	return team
}

func TestMemory_UsernameUnique(t *testing.T) {
	m := New()
	seedUser(t, m, "alice")

	_, err := m.CreateUser(context.Background(), entities.User{Username: "alice", Token: "other"})
	require.ErrorIs(t, err, entities.ErrUsernameTaken)
}

func TestMemory_DuplicateLink(t *testing.T) {
	m := New()
	ctx := context.Background()
	usr := seedUser(t, m, "alice")
	team := seedTeam(t, m, "focus")

	link, err := m.AddMember(ctx, team.ID, usr.ID)
	require.NoError(t, err)
	require.Equal(t, entities.MembershipKey{TeamID: team.ID, UserID: usr.ID}, link.Key())
	require.False(t, link.JoinedAt.IsZero())

	_, err = m.AddMember(ctx, team.ID, usr.ID)
	require.ErrorIs(t, err, entities.ErrAlreadyMember)

	ok, err := m.IsMember(ctx, team.ID, usr.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemory_LinkUnknownSides(t *testing.T) {
	m := New()
	ctx := context.Background()
	usr := seedUser(t, m, "alice")
	team := seedTeam(t, m, "focus")

	_, err := m.AddMember(ctx, team.ID+100, usr.ID)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	_, err = m.AddMember(ctx, team.ID, usr.ID+100)
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestMemory_UnlinkSemantics(t *testing.T) {
	m := New()
	ctx := context.Background()
	usr := seedUser(t, m, "alice")
	team := seedTeam(t, m, "focus")

	_, err := m.RemoveMember(ctx, team.ID, usr.ID)
	require.ErrorIs(t, err, entities.ErrMembershipNotFound)

	_, err = m.AddMember(ctx, team.ID, usr.ID)
	require.NoError(t, err)

	removed, err := m.RemoveMember(ctx, team.ID, usr.ID)
	require.NoError(t, err)
	require.Equal(t, usr.ID, removed.UserID)

	ok, err := m.IsMember(ctx, team.ID, usr.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemory_BidirectionalListings(t *testing.T) {
	m := New()
	ctx := context.Background()
	alice := seedUser(t, m, "alice")
	bob := seedUser(t, m, "bob")
	focus := seedTeam(t, m, "focus")
	deep := seedTeam(t, m, "deep")

	for _, pair := range [][2]int64{
		{focus.ID, alice.ID},
		{focus.ID, bob.ID},
		{deep.ID, alice.ID},
	} {
		_, err := m.AddMember(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	teams, err := m.TeamsOf(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	members, err := m.MembersOf(ctx, focus.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, alice.ID, members[0].ID)
	require.Equal(t, bob.ID, members[1].ID)

	members, err = m.MembersOf(ctx, deep.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, alice.ID, members[0].ID)
}

func TestMemory_DeleteUserCascades(t *testing.T) {
	m := New()
	ctx := context.Background()
	usr := seedUser(t, m, "alice")
	team := seedTeam(t, m, "focus")
	_, err := m.AddMember(ctx, team.ID, usr.ID)
	require.NoError(t, err)

	require.NoError(t, m.DeleteUser(ctx, usr.ID))

	members, err := m.MembersOf(ctx, team.ID)
	require.NoError(t, err)
	require.Empty(t, members)
}

func TestMemory_SessionLifecycle(t *testing.T) {
	m := New()
	ctx := context.Background()
	team := seedTeam(t, m, "focus")

	first, err := m.StartSession(ctx, team.ID, 30)
	require.NoError(t, err)
	require.True(t, first.Open())
	require.Equal(t, 30, first.GoalMinutes)

	_, err = m.StartSession(ctx, team.ID, 45)
	require.ErrorIs(t, err, entities.ErrSessionActive)

	ended, err := m.EndSession(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, ended.ID)
	require.NotNil(t, ended.EndedAt)

	_, err = m.EndSession(ctx, team.ID)
	require.ErrorIs(t, err, entities.ErrNoActiveSession)

	second, err := m.StartSession(ctx, team.ID, 45)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	list, err := m.ListSessions(ctx, team.ID, entities.OrderAsc)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.False(t, list[0].Open())
	require.True(t, list[1].Open())
}

func TestMemory_SessionUnknownTeam(t *testing.T) {
	m := New()
	ctx := context.Background()

	_, err := m.StartSession(ctx, 404, 30)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	_, err = m.EndSession(ctx, 404)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func TestMemory_ConcurrentStartSession(t *testing.T) {
	m := New()
	ctx := context.Background()
	team := seedTeam(t, m, "focus")

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.StartSession(ctx, team.ID, 30)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var started, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			started++
		default:
			require.ErrorIs(t, err, entities.ErrSessionActive)
			conflicts++
		}
	}
	require.Equal(t, 1, started)
	require.Equal(t, workers-1, conflicts)

	list, err := m.ListSessions(ctx, team.ID, entities.OrderAsc)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestMemory_TokenLookup(t *testing.T) {
	m := New()
	ctx := context.Background()
	usr := seedUser(t, m, "alice")

	got, err := m.GetUserByToken(ctx, usr.Token)
	require.NoError(t, err)
	require.Equal(t, usr.ID, got.ID)

	_, err = m.GetUserByToken(ctx, "never-issued")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestMemory_InviteLookup(t *testing.T) {
	m := New()
	ctx := context.Background()
	team := seedTeam(t, m, "focus")

	got, err := m.GetTeamByInviteUUID(ctx, team.InviteUUID)
	require.NoError(t, err)
	require.Equal(t, team.ID, got.ID)

	_, err = m.GetTeamByInviteUUID(ctx, "no-such")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func TestMemory_TasksAndComments(t *testing.T) {
	m := New()
	ctx := context.Background()
	usr := seedUser(t, m, "alice")
	team := seedTeam(t, m, "focus")

	task, err := m.CreateTask(ctx, entities.Task{TeamID: team.ID, Title: "write tests"})
	require.NoError(t, err)
	require.False(t, task.Done)

	done, err := m.SetTaskDone(ctx, task.ID, true)
	require.NoError(t, err)
	require.True(t, done.Done)

	comment, err := m.CreateComment(ctx, entities.Comment{TaskID: task.ID, AuthorID: usr.ID, Body: "on it"})
	require.NoError(t, err)

	updated, err := m.UpdateComment(ctx, comment.ID, "done")
	require.NoError(t, err)
	require.Equal(t, "done", updated.Body)

	comments, err := m.ListComments(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	require.NoError(t, m.DeleteComment(ctx, comment.ID))
	require.ErrorIs(t, m.DeleteComment(ctx, comment.ID), entities.ErrCommentNotFound)
}

func TestMemory_TeamStats(t *testing.T) {
	m := New()
	ctx := context.Background()
	team := seedTeam(t, m, "focus")

	_, err := m.StartSession(ctx, team.ID, 30)
	require.NoError(t, err)
	_, err = m.EndSession(ctx, team.ID)
	require.NoError(t, err)
	_, err = m.StartSession(ctx, team.ID, 45)
	require.NoError(t, err)

	stats, err := m.TeamStats(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.SessionCount)
	require.Equal(t, int64(1), stats.CompletedCount)
	require.Equal(t, int64(75), stats.GoalMinutesTotal)
	require.True(t, stats.HasOpenSession)
}

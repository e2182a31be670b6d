package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/service"
)

func TestProfileStats(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	testuser := e.signup(t, "testuser", "test@test.com", "testuser")
	u1 := e.signup(t, "abc", "test1@test.com", "password")
	u2 := e.signup(t, "efg", "test2@test.com", "password")
	u3 := e.signup(t, "hij", "test3@test.com", "password")
	u4 := e.signup(t, "testing", "test4@test.com", "password")

	// testuser follows u1 and u2, and is followed by u3 and u4
	require.NoError(t, e.follows.Follow(ctx, testuser.ID, u1.ID))
	require.NoError(t, e.follows.Follow(ctx, testuser.ID, u2.ID))
	require.NoError(t, e.follows.Follow(ctx, u3.ID, testuser.ID))
	require.NoError(t, e.follows.Follow(ctx, u4.ID, testuser.ID))

	m1 := e.post(t, testuser, "abc")
	e.post(t, testuser, "efg")
	e.post(t, testuser, "hij")

	// liking your own message is rejected and must not count
	_, err := e.likes.Toggle(ctx, testuser.ID, m1.ID)
	assert.ErrorIs(t, err, service.ErrSelfLike)

	other1 := e.post(t, u1, "from abc")
	other2 := e.post(t, u2, "from efg")
	_, err = e.likes.Toggle(ctx, testuser.ID, other1.ID)
	require.NoError(t, err)
	_, err = e.likes.Toggle(ctx, testuser.ID, other2.ID)
	require.NoError(t, err)

	stats, err := e.profiles.Stats(ctx, testuser.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Messages)
	assert.Equal(t, 2, stats.Following)
	assert.Equal(t, 2, stats.Followers)
	assert.Equal(t, 2, stats.Likes)
}

func TestProfileStatsUnknownUser(t *testing.T) {
	e := newEnv(t)
	u1 := e.signup(t, "testuser", "test@test.com", "pw")
	require.NoError(t, e.users.Delete(context.Background(), u1.ID))

	_, err := e.profiles.Stats(context.Background(), u1.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUsersIndexAndSearch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	e.signup(t, "testuser", "test@test.com", "testuser")
	e.signup(t, "abc", "test1@test.com", "password")
	e.signup(t, "efg", "test2@test.com", "password")
	e.signup(t, "hij", "test3@test.com", "password")
	e.signup(t, "testing", "test4@test.com", "password")

	all, err := e.profiles.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	matched, err := e.profiles.Search(ctx, "test")
	require.NoError(t, err)
	require.Len(t, matched, 2)

	var names []string
	for _, u := range matched {
		names = append(names, u.Username)
	}
	assert.Contains(t, names, "testuser")
	assert.Contains(t, names, "testing")
	assert.NotContains(t, names, "abc")
	assert.NotContains(t, names, "efg")
	assert.NotContains(t, names, "hij")
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/database"
	"github.com/warblerhq/warbler/internal/service"
)

func TestIsFollowing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u1 := e.signup(t, "testuser", "test@test.com", "hashed_password")
	u2 := e.signup(t, "testuser2", "test2@test.com", "hashed_password2")

	require.NoError(t, e.follows.Follow(ctx, u1.ID, u2.ID))

	following, err := e.follows.IsFollowing(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	assert.True(t, following)

	followedBy, err := e.follows.IsFollowedBy(ctx, u2.ID, u1.ID)
	require.NoError(t, err)
	assert.True(t, followedBy)

	// the edge is directed: the reverse pair is not implied
	reverse, err := e.follows.IsFollowing(ctx, u2.ID, u1.ID)
	require.NoError(t, err)
	assert.False(t, reverse)

	reverseBy, err := e.follows.IsFollowedBy(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	assert.False(t, reverseBy)
}

func TestIsNotFollowing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u1 := e.signup(t, "testuser", "test@test.com", "hashed_password")
	u2 := e.signup(t, "testuser2", "test2@test.com", "hashed_password2")

	following, err := e.follows.IsFollowing(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	assert.False(t, following)

	followedBy, err := e.follows.IsFollowedBy(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	assert.False(t, followedBy)
}

func TestDuplicateFollowFails(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u1 := e.signup(t, "testuser", "test@test.com", "pw")
	u2 := e.signup(t, "testuser2", "test2@test.com", "pw")

	require.NoError(t, e.follows.Follow(ctx, u1.ID, u2.ID))

	err := e.follows.Follow(ctx, u1.ID, u2.ID)
	assert.ErrorIs(t, err, database.ErrUniqueViolation)
}

func TestSelfFollowRejected(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u1 := e.signup(t, "testuser", "test@test.com", "pw")

	err := e.follows.Follow(ctx, u1.ID, u1.ID)
	assert.ErrorIs(t, err, service.ErrSelfFollow)

	followers, err := e.follows.Followers(ctx, u1.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestUnfollowIsIdempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u1 := e.signup(t, "testuser", "test@test.com", "pw")
	u2 := e.signup(t, "testuser2", "test2@test.com", "pw")

	require.NoError(t, e.follows.Follow(ctx, u1.ID, u2.ID))

	removed, err := e.follows.Unfollow(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// removing an absent edge is a no-op, not an error
	removed, err = e.follows.Unfollow(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	following, err := e.follows.IsFollowing(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowerAndFollowingLists(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u1 := e.signup(t, "testuser", "test@test.com", "pw")
	u2 := e.signup(t, "abc", "test1@test.com", "pw")
	u3 := e.signup(t, "efg", "test2@test.com", "pw")

	require.NoError(t, e.follows.Follow(ctx, u1.ID, u2.ID))
	require.NoError(t, e.follows.Follow(ctx, u1.ID, u3.ID))
	require.NoError(t, e.follows.Follow(ctx, u2.ID, u1.ID))

	following, err := e.follows.Following(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, "abc", following[0].Username)
	assert.Equal(t, "efg", following[1].Username)

	followers, err := e.follows.Followers(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, u2.ID, followers[0].ID)

	// u3 is followed but follows nobody: the empty side comes back as
	// an empty list, not a nil error
	followersOfU3, err := e.follows.Followers(ctx, u3.ID)
	require.NoError(t, err)
	require.Len(t, followersOfU3, 1)
	assert.Equal(t, u1.ID, followersOfU3[0].ID)

	none, err := e.follows.Following(ctx, u3.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFollowUnknownUserFails(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u1 := e.signup(t, "testuser", "test@test.com", "pw")

	ghost := e.signup(t, "ghost", "ghost@test.com", "pw")
	require.NoError(t, e.users.Delete(ctx, ghost.ID))

	err := e.follows.Follow(ctx, u1.ID, ghost.ID)
	assert.ErrorIs(t, err, database.ErrForeignKeyViolation)
}

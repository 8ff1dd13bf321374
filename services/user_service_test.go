package services

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/moments-social/api-go/httperror"
	"github.com/moments-social/api-go/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowSymmetry(t *testing.T) {
	store := repositories.NewInMemoryStore()
	a := seedUser(t, store, "ana", "ana@example.com")
	b := seedUser(t, store, "bruno", "bruno@example.com")
	svc := NewUserService(store)

	require.NoError(t, svc.Follow(context.Background(), a.ID, b.ID))

	followed, err := store.Users().GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	follower, err := store.Users().GetByID(context.Background(), b.ID)
	require.NoError(t, err)

	assert.Equal(t, []int64{int64(b.ID)}, []int64(followed.Followers))
	assert.Equal(t, []int64{int64(a.ID)}, []int64(follower.Follows))
}

func TestFollowTwiceAccumulatesDuplicates(t *testing.T) {
	store := repositories.NewInMemoryStore()
	u1 := seedUser(t, store, "u1", "u1@example.com")
	u2 := seedUser(t, store, "u2", "u2@example.com")
	svc := NewUserService(store)

	require.NoError(t, svc.Follow(context.Background(), u1.ID, u2.ID))
	require.NoError(t, svc.Follow(context.Background(), u1.ID, u2.ID))

	followed, err := store.Users().GetByID(context.Background(), u1.ID)
	require.NoError(t, err)
	follower, err := store.Users().GetByID(context.Background(), u2.ID)
	require.NoError(t, err)

	assert.Equal(t, []int64{int64(u2.ID), int64(u2.ID)}, []int64(followed.Followers))
	assert.Equal(t, []int64{int64(u1.ID), int64(u1.ID)}, []int64(follower.Follows))
}

func TestFollowUnknownUserDoesNotMutate(t *testing.T) {
	store := repositories.NewInMemoryStore()
	real := seedUser(t, store, "ana", "ana@example.com")
	svc := NewUserService(store)

	err := svc.Follow(context.Background(), 999, real.ID)
	var httpErr *httperror.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, httperror.KindNotFound, httpErr.Kind)

	stored, getErr := store.Users().GetByID(context.Background(), real.ID)
	require.NoError(t, getErr)
	assert.Empty(t, stored.Follows)

	// Same check with the follower missing.
	err = svc.Follow(context.Background(), real.ID, 999)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, httperror.KindNotFound, httpErr.Kind)

	stored, getErr = store.Users().GetByID(context.Background(), real.ID)
	require.NoError(t, getErr)
	assert.Empty(t, stored.Followers)
}

func TestFollowSecondWriteFailureLeavesFirstApplied(t *testing.T) {
	// The two relationship writes are deliberately independent; a
	// failure on the follower side leaves the followed side updated.
	mem := repositories.NewInMemoryStore()
	a := seedUser(t, mem, "ana", "ana@example.com")
	b := seedUser(t, mem, "bruno", "bruno@example.com")
	svc := NewUserService(&failingStore{Store: mem, failUserUpdateID: b.ID})

	err := svc.Follow(context.Background(), a.ID, b.ID)
	var httpErr *httperror.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, httperror.KindRelationshipUpdateFailed, httpErr.Kind)

	followed, getErr := mem.Users().GetByID(context.Background(), a.ID)
	require.NoError(t, getErr)
	assert.Equal(t, []int64{int64(b.ID)}, []int64(followed.Followers))

	follower, getErr := mem.Users().GetByID(context.Background(), b.ID)
	require.NoError(t, getErr)
	assert.Empty(t, follower.Follows)
}

func TestUnfollowRemovesAllOccurrences(t *testing.T) {
	store := repositories.NewInMemoryStore()
	followed := seedUser(t, store, "followed", "followed@example.com")
	x := seedUser(t, store, "x", "x@example.com")
	y := seedUser(t, store, "y", "y@example.com")
	svc := NewUserService(store)

	followed.Followers = pq.Int64Array{int64(x.ID), int64(x.ID), int64(y.ID)}
	require.NoError(t, store.Users().Update(context.Background(), followed))
	x.Follows = pq.Int64Array{int64(followed.ID), int64(followed.ID)}
	require.NoError(t, store.Users().Update(context.Background(), x))

	require.NoError(t, svc.Unfollow(context.Background(), followed.ID, x.ID))

	stored, err := store.Users().GetByID(context.Background(), followed.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{int64(y.ID)}, []int64(stored.Followers))

	storedX, err := store.Users().GetByID(context.Background(), x.ID)
	require.NoError(t, err)
	assert.Empty(t, storedX.Follows)
}

func TestGetFollowersResolvesInOrder(t *testing.T) {
	store := repositories.NewInMemoryStore()
	target := seedUser(t, store, "target", "target@example.com")
	first := seedUser(t, store, "first", "first@example.com")
	second := seedUser(t, store, "second", "second@example.com")
	svc := NewUserService(store)

	require.NoError(t, svc.Follow(context.Background(), target.ID, second.ID))
	require.NoError(t, svc.Follow(context.Background(), target.ID, first.ID))

	followers, err := svc.GetFollowers(context.Background(), target.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, second.ID, followers[0].ID)
	assert.Equal(t, first.ID, followers[1].ID)
}

func TestGetFollowersFailsFastOnDanglingID(t *testing.T) {
	store := repositories.NewInMemoryStore()
	target := seedUser(t, store, "target", "target@example.com")
	real := seedUser(t, store, "real", "real@example.com")
	svc := NewUserService(store)

	target.Followers = pq.Int64Array{int64(real.ID), 999}
	require.NoError(t, store.Users().Update(context.Background(), target))

	_, err := svc.GetFollowers(context.Background(), target.ID)
	var httpErr *httperror.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, httperror.KindNotFound, httpErr.Kind)
}

func TestGetFollows(t *testing.T) {
	store := repositories.NewInMemoryStore()
	follower := seedUser(t, store, "follower", "follower@example.com")
	followed := seedUser(t, store, "followed", "followed@example.com")
	svc := NewUserService(store)

	require.NoError(t, svc.Follow(context.Background(), followed.ID, follower.ID))

	follows, err := svc.GetFollows(context.Background(), follower.ID)
	require.NoError(t, err)
	require.Len(t, follows, 1)
	assert.Equal(t, followed.ID, follows[0].ID)
}

func TestGetUserByIDNotFound(t *testing.T) {
	store := repositories.NewInMemoryStore()
	svc := NewUserService(store)

	_, err := svc.GetUserByID(context.Background(), 404)
	var httpErr *httperror.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, httperror.KindNotFound, httpErr.Kind)
}

func TestGetUsers(t *testing.T) {
	store := repositories.NewInMemoryStore()
	seedUser(t, store, "ana", "ana@example.com")
	seedUser(t, store, "bruno", "bruno@example.com")
	svc := NewUserService(store)

	users, err := svc.GetUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

package services

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/moments-social/api-go/httperror"
	"github.com/moments-social/api-go/models"
	"github.com/moments-social/api-go/repositories"
)

type UserService struct {
	store repositories.Store
}

func NewUserService(store repositories.Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, httperror.StoreError("fetching users failed, please try again later", err)
	}
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, httperror.NotFound("could not find user for the provided id")
		}
		return nil, httperror.StoreError("something went wrong, could not find user", err)
	}
	return user, nil
}

// Follow appends the follower to the followed user's followers and the
// followed user to the follower's follows. The append is unconditional:
// following the same user twice records the id twice. The two writes are
// independent, not a transaction; a failure between them leaves the
// first one applied.
func (s *UserService) Follow(ctx context.Context, followedID, followerID uint) error {
	followed, follower, err := s.resolvePair(ctx, followedID, followerID)
	if err != nil {
		return err
	}

	followed.Followers = append(followed.Followers, int64(followerID))
	follower.Follows = append(follower.Follows, int64(followedID))

	if err := s.store.Users().Update(ctx, followed); err != nil {
		return httperror.RelationshipUpdateFailed("could not follow user, please try again", err)
	}
	if err := s.store.Users().Update(ctx, follower); err != nil {
		return httperror.RelationshipUpdateFailed("could not follow user, please try again", err)
	}
	return nil
}

// Unfollow removes every occurrence of the pair's ids from both sides.
func (s *UserService) Unfollow(ctx context.Context, followedID, followerID uint) error {
	followed, follower, err := s.resolvePair(ctx, followedID, followerID)
	if err != nil {
		return err
	}

	followed.Followers = removeAll(followed.Followers, int64(followerID))
	follower.Follows = removeAll(follower.Follows, int64(followedID))

	if err := s.store.Users().Update(ctx, followed); err != nil {
		return httperror.RelationshipUpdateFailed("could not unfollow user, please try again", err)
	}
	if err := s.store.Users().Update(ctx, follower); err != nil {
		return httperror.RelationshipUpdateFailed("could not unfollow user, please try again", err)
	}
	return nil
}

// resolvePair loads both users before either side is touched, so a
// missing user never leaves a half-applied relationship.
func (s *UserService) resolvePair(ctx context.Context, followedID, followerID uint) (*models.User, *models.User, error) {
	followed, err := s.store.Users().GetByID(ctx, followedID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, httperror.NotFound("could not find user for the provided id")
		}
		return nil, nil, httperror.RelationshipUpdateFailed("could not update relationship, please try again", err)
	}

	follower, err := s.store.Users().GetByID(ctx, followerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, httperror.NotFound("could not find user for the provided id")
		}
		return nil, nil, httperror.RelationshipUpdateFailed("could not update relationship, please try again", err)
	}

	return followed, follower, nil
}

func (s *UserService) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveAll(ctx, user.Followers)
}

func (s *UserService) GetFollows(ctx context.Context, userID uint) ([]models.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveAll(ctx, user.Follows)
}

// resolveAll resolves each id to its full user in list order. One
// unresolvable id aborts the whole operation; there is no partial
// result.
func (s *UserService) resolveAll(ctx context.Context, ids pq.Int64Array) ([]models.User, error) {
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.store.Users().GetByID(ctx, uint(id))
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, httperror.NotFound("could not find user for the provided id")
			}
			return nil, httperror.StoreError("something went wrong, could not find user", err)
		}
		users = append(users, *user)
	}
	return users, nil
}

func removeAll(ids pq.Int64Array, id int64) pq.Int64Array {
	kept := make(pq.Int64Array, 0, len(ids))
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}

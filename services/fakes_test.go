package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/moments-social/api-go/models"
	"github.com/moments-social/api-go/repositories"
	"github.com/stretchr/testify/require"
)

type stubGeocoder struct {
	location models.Location
	err      error
}

func (g *stubGeocoder) Resolve(ctx context.Context, address string) (models.Location, error) {
	if g.err != nil {
		return models.Location{}, g.err
	}
	return g.location, nil
}

type stubMedia struct {
	deleted []string
	err     error
}

func (m *stubMedia) Delete(ctx context.Context, ref string) error {
	m.deleted = append(m.deleted, ref)
	return m.err
}

// failingStore fails every user update for one id, inside and outside
// transactions, to simulate a write failure on the second document.
type failingStore struct {
	repositories.Store
	failUserUpdateID uint
}

func (f *failingStore) Users() repositories.UserStore {
	return &failingUserStore{UserStore: f.Store.Users(), failID: f.failUserUpdateID}
}

func (f *failingStore) Transaction(ctx context.Context, fn func(repositories.Store) error) error {
	return f.Store.Transaction(ctx, func(tx repositories.Store) error {
		return fn(&failingStore{Store: tx, failUserUpdateID: f.failUserUpdateID})
	})
}

type failingUserStore struct {
	repositories.UserStore
	failID uint
}

func (f *failingUserStore) Update(ctx context.Context, user *models.User) error {
	if user.ID == f.failID {
		return errors.New("simulated write failure")
	}
	return f.UserStore.Update(ctx, user)
}

func seedUser(t *testing.T, store repositories.Store, name, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:      name,
		Email:     email,
		Password:  "hashed-password",
		Image:     "https://cdn.example.com/images/" + name + ".png",
		Followers: pq.Int64Array{},
		Follows:   pq.Int64Array{},
		Places:    pq.Int64Array{},
	}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}

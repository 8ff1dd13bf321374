package repositories

import (
	"context"
	"errors"

	"github.com/moments-social/api-go/models"
)

// ErrNotFound is returned by lookups when no document matches.
var ErrNotFound = errors.New("record not found")

type PlaceStore interface {
	GetByID(ctx context.Context, id uint) (*models.Place, error)
	List(ctx context.Context) ([]models.Place, error)
	// ListByIDs resolves stored place references into full documents,
	// preserving the order (and any duplicates) of ids. A missing id
	// yields ErrNotFound.
	ListByIDs(ctx context.Context, ids []int64) ([]models.Place, error)
	Create(ctx context.Context, place *models.Place) error
	Update(ctx context.Context, place *models.Place) error
	Delete(ctx context.Context, place *models.Place) error
}

type UserStore interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// Store is the entity store. Transaction runs fn against a store bound
// to a single transaction; if fn returns an error every write made
// through that store is rolled back.
type Store interface {
	Places() PlaceStore
	Users() UserStore
	Transaction(ctx context.Context, fn func(Store) error) error
}

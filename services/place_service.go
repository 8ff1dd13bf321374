package services

import (
	"context"
	"errors"
	"log"

	"github.com/moments-social/api-go/httperror"
	"github.com/moments-social/api-go/models"
	"github.com/moments-social/api-go/repositories"
)

// Geocoder resolves a free-text address into coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (models.Location, error)
}

// MediaDeleter removes a stored image by its reference.
type MediaDeleter interface {
	Delete(ctx context.Context, ref string) error
}

type PlaceService struct {
	store    repositories.Store
	geocoder Geocoder
	media    MediaDeleter
}

func NewPlaceService(store repositories.Store, geocoder Geocoder, media MediaDeleter) *PlaceService {
	return &PlaceService{store: store, geocoder: geocoder, media: media}
}

type PlaceInput struct {
	Title       string
	Description string
	Address     string
}

func (s *PlaceService) List(ctx context.Context) ([]models.Place, error) {
	places, err := s.store.Places().List(ctx)
	if err != nil {
		return nil, httperror.StoreError("fetching places failed, please try again later", err)
	}
	return places, nil
}

func (s *PlaceService) GetByID(ctx context.Context, placeID uint) (*models.Place, error) {
	place, err := s.store.Places().GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, httperror.NotFound("could not find a place for the provided id")
		}
		return nil, httperror.StoreError("something went wrong, could not find a place", err)
	}
	return place, nil
}

// ListByOwner resolves the owning user, then populates its place
// references in stored order.
func (s *PlaceService) ListByOwner(ctx context.Context, userID uint) ([]models.Place, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, httperror.NotFound("could not find places for the provided user id")
		}
		return nil, httperror.StoreError("fetching places failed, please try again later", err)
	}

	places, err := s.store.Places().ListByIDs(ctx, user.Places)
	if err != nil {
		return nil, httperror.StoreError("fetching places failed, please try again later", err)
	}
	return places, nil
}

// Create geocodes the address, checks the creator exists, then inserts
// the place and appends its id to the creator's places in one
// transaction. Either both writes commit or neither does.
func (s *PlaceService) Create(ctx context.Context, creatorID uint, input PlaceInput, imageRef string) (*models.Place, error) {
	location, err := s.geocoder.Resolve(ctx, input.Address)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Users().GetByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, httperror.NotFound("could not find user for provided id")
		}
		return nil, httperror.StoreError("creating place failed, please try again", err)
	}

	place := &models.Place{
		Title:       input.Title,
		Description: input.Description,
		Address:     input.Address,
		Location:    location,
		Image:       imageRef,
		CreatorID:   creatorID,
	}

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		if err := tx.Places().Create(ctx, place); err != nil {
			return err
		}
		user.Places = append(user.Places, int64(place.ID))
		return tx.Users().Update(ctx, user)
	})
	if err != nil {
		return nil, httperror.StoreError("creating place failed, please try again", err)
	}

	return place, nil
}

// Update changes title and description. Only the creator may update.
func (s *PlaceService) Update(ctx context.Context, placeID, requesterID uint, title, description string) (*models.Place, error) {
	place, err := s.store.Places().GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, httperror.NotFound("could not find a place for the provided id")
		}
		return nil, httperror.StoreError("something went wrong, could not update place", err)
	}

	if place.CreatorID != requesterID {
		return nil, httperror.Unauthorized("you are not allowed to edit this place")
	}

	place.Title = title
	place.Description = description

	if err := s.store.Places().Update(ctx, place); err != nil {
		return nil, httperror.StoreError("something went wrong, could not update place", err)
	}
	return place, nil
}

// Delete removes the place and pulls its id from the creator's places in
// one transaction, then best-effort-deletes the stored image. An image
// cleanup failure is logged, never surfaced: the place is already gone.
func (s *PlaceService) Delete(ctx context.Context, placeID, requesterID uint) error {
	place, err := s.store.Places().GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return httperror.NotFound("could not find place for this id")
		}
		return httperror.StoreError("something went wrong, could not delete place", err)
	}

	creator, err := s.store.Users().GetByID(ctx, place.CreatorID)
	if err != nil {
		return httperror.StoreError("something went wrong, could not delete place", err)
	}

	if creator.ID != requesterID {
		return httperror.Unauthorized("you are not allowed to delete this place")
	}

	imageRef := place.Image

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		if err := tx.Places().Delete(ctx, place); err != nil {
			return err
		}
		creator.Places = removeAll(creator.Places, int64(place.ID))
		return tx.Users().Update(ctx, creator)
	})
	if err != nil {
		return httperror.StoreError("something went wrong, could not delete place", err)
	}

	if err := s.media.Delete(ctx, imageRef); err != nil {
		log.Printf("could not delete place image %s: %v", imageRef, err)
	}

	return nil
}

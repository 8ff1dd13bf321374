package repositories

import (
	"context"
	"errors"

	"github.com/moments-social/api-go/models"
	"gorm.io/gorm"
)

// GormStore is the postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Places() PlaceStore {
	return &gormPlaceStore{db: s.db}
}

func (s *GormStore) Users() UserStore {
	return &gormUserStore{db: s.db}
}

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

type gormPlaceStore struct {
	db *gorm.DB
}

func (s *gormPlaceStore) GetByID(ctx context.Context, id uint) (*models.Place, error) {
	var place models.Place
	if err := s.db.WithContext(ctx).First(&place, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &place, nil
}

func (s *gormPlaceStore) List(ctx context.Context) ([]models.Place, error) {
	var places []models.Place
	if err := s.db.WithContext(ctx).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// ListByIDs looks ids up one by one; a single IN query would lose the
// stored order and collapse duplicates.
func (s *gormPlaceStore) ListByIDs(ctx context.Context, ids []int64) ([]models.Place, error) {
	places := make([]models.Place, 0, len(ids))
	for _, id := range ids {
		var place models.Place
		if err := s.db.WithContext(ctx).First(&place, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		places = append(places, place)
	}
	return places, nil
}

func (s *gormPlaceStore) Create(ctx context.Context, place *models.Place) error {
	return s.db.WithContext(ctx).Create(place).Error
}

func (s *gormPlaceStore) Update(ctx context.Context, place *models.Place) error {
	return s.db.WithContext(ctx).Save(place).Error
}

func (s *gormPlaceStore) Delete(ctx context.Context, place *models.Place) error {
	return s.db.WithContext(ctx).Delete(place).Error
}

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormUserStore) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormUserStore) Update(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

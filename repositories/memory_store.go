package repositories

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/lib/pq"
	"github.com/moments-social/api-go/models"
)

// InMemoryStore is a map-backed Store used in tests and local
// development. Transaction snapshots both collections up front and
// restores them if fn fails, mirroring the rollback contract of the
// postgres store.
type InMemoryStore struct {
	mu          sync.Mutex
	users       map[uint]*models.User
	places      map[uint]*models.Place
	nextUserID  uint
	nextPlaceID uint
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users:  make(map[uint]*models.User),
		places: make(map[uint]*models.Place),
	}
}

func (s *InMemoryStore) Places() PlaceStore {
	return &memPlaceStore{s: s}
}

func (s *InMemoryStore) Users() UserStore {
	return &memUserStore{s: s}
}

func (s *InMemoryStore) Transaction(ctx context.Context, fn func(Store) error) error {
	s.mu.Lock()
	users := make(map[uint]*models.User, len(s.users))
	for id, u := range s.users {
		users[id] = copyUser(u)
	}
	places := make(map[uint]*models.Place, len(s.places))
	for id, p := range s.places {
		cp := *p
		places[id] = &cp
	}
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.users = users
		s.places = places
		s.mu.Unlock()
		return err
	}
	return nil
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.Followers = append(pq.Int64Array(nil), u.Followers...)
	cp.Follows = append(pq.Int64Array(nil), u.Follows...)
	cp.Places = append(pq.Int64Array(nil), u.Places...)
	return &cp
}

type memPlaceStore struct {
	s *InMemoryStore
}

func (m *memPlaceStore) GetByID(ctx context.Context, id uint) (*models.Place, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	place, ok := m.s.places[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *place
	return &cp, nil
}

func (m *memPlaceStore) List(ctx context.Context) ([]models.Place, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	places := make([]models.Place, 0, len(m.s.places))
	for _, place := range m.s.places {
		places = append(places, *place)
	}
	sort.Slice(places, func(i, j int) bool { return places[i].ID < places[j].ID })
	return places, nil
}

func (m *memPlaceStore) ListByIDs(ctx context.Context, ids []int64) ([]models.Place, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	places := make([]models.Place, 0, len(ids))
	for _, id := range ids {
		place, ok := m.s.places[uint(id)]
		if !ok {
			return nil, ErrNotFound
		}
		places = append(places, *place)
	}
	return places, nil
}

func (m *memPlaceStore) Create(ctx context.Context, place *models.Place) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.nextPlaceID++
	place.ID = m.s.nextPlaceID
	cp := *place
	m.s.places[place.ID] = &cp
	return nil
}

func (m *memPlaceStore) Update(ctx context.Context, place *models.Place) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.places[place.ID]; !ok {
		return ErrNotFound
	}
	cp := *place
	m.s.places[place.ID] = &cp
	return nil
}

func (m *memPlaceStore) Delete(ctx context.Context, place *models.Place) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	delete(m.s.places, place.ID)
	return nil
}

type memUserStore struct {
	s *InMemoryStore
}

func (m *memUserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	user, ok := m.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(user), nil
}

func (m *memUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, user := range m.s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, ErrNotFound
}

func (m *memUserStore) List(ctx context.Context) ([]models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	users := make([]models.User, 0, len(m.s.users))
	for _, user := range m.s.users {
		users = append(users, *copyUser(user))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memUserStore) Create(ctx context.Context, user *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, existing := range m.s.users {
		if existing.Email == user.Email {
			return errors.New("email already exists")
		}
	}
	m.s.nextUserID++
	user.ID = m.s.nextUserID
	m.s.users[user.ID] = copyUser(user)
	return nil
}

func (m *memUserStore) Update(ctx context.Context, user *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.users[user.ID]; !ok {
		return ErrNotFound
	}
	m.s.users[user.ID] = copyUser(user)
	return nil
}

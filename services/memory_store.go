package services

import (
	"context"
	"sync"

	"roommate_server/models"
)

// MemoryStore keeps profiles and logins in process memory. It backs
// STORE_BACKEND=memory and the tests. Profiles are listed in insertion order.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*models.ProfileRecord
	order    []string
	logins   map[string]models.LoginRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*models.ProfileRecord),
		logins:   make(map[string]models.LoginRecord),
	}
}

// PutProfile inserts or replaces a profile
func (m *MemoryStore) PutProfile(profile models.ProfileRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putProfileLocked(profile)
}

func (m *MemoryStore) putProfileLocked(profile models.ProfileRecord) {
	if _, ok := m.profiles[profile.Email]; !ok {
		m.order = append(m.order, profile.Email)
	}
	cp := copyProfile(profile)
	m.profiles[profile.Email] = &cp
}

func copyProfile(p models.ProfileRecord) models.ProfileRecord {
	p.FavouriteRoommates = append([]string(nil), p.FavouriteRoommates...)
	if p.RecommendedRoommates != nil {
		p.RecommendedRoommates = append([]string{}, p.RecommendedRoommates...)
	}
	p.Preference.Location = append([]string(nil), p.Preference.Location...)
	return p
}

func (m *MemoryStore) FindProfile(_ context.Context, email string) (*models.ProfileRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[email]
	if !ok {
		return nil, nil
	}
	cp := copyProfile(*p)
	return &cp, nil
}

func (m *MemoryStore) ListProfilesExcluding(_ context.Context, emails []string) ([]models.ProfileRecord, error) {
	excluded := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		excluded[e] = struct{}{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	profiles := []models.ProfileRecord{}
	for _, email := range m.order {
		if _, skip := excluded[email]; skip {
			continue
		}
		profiles = append(profiles, copyProfile(*m.profiles[email]))
	}
	return profiles, nil
}

func (m *MemoryStore) AddFavourite(_ context.Context, userEmail, favEmail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userEmail]
	if !ok {
		m.putProfileLocked(models.ProfileRecord{Email: userEmail, FavouriteRoommates: []string{favEmail}})
		return nil
	}
	if !p.IsFavourite(favEmail) {
		p.FavouriteRoommates = append(p.FavouriteRoommates, favEmail)
	}
	return nil
}

func (m *MemoryStore) RemoveFavourite(_ context.Context, userEmail, favEmail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userEmail]
	if !ok {
		return models.ErrNoDocument
	}
	kept := p.FavouriteRoommates[:0]
	for _, fav := range p.FavouriteRoommates {
		if fav != favEmail {
			kept = append(kept, fav)
		}
	}
	p.FavouriteRoommates = kept
	return nil
}

func (m *MemoryStore) FindLogin(_ context.Context, email string) (*models.LoginRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.logins[email]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (m *MemoryStore) FindLoginContact(ctx context.Context, email string) (*models.LoginRecord, error) {
	l, err := m.FindLogin(ctx, email)
	if l == nil || err != nil {
		return l, err
	}
	return &models.LoginRecord{Email: l.Email, Name: l.Name, Gender: l.Gender, Phone: l.Phone}, nil
}

// InsertLogin keeps the latest login per email
func (m *MemoryStore) InsertLogin(_ context.Context, login models.LoginRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins[login.Email] = login
	return nil
}

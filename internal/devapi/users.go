package devapi

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-profile-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

type user struct {
	profile      models.Profile
	passwordHash []byte
}

// userStore keeps users keyed by normalized e-mail.
type userStore struct {
	mu    sync.RWMutex
	users map[string]*user
	cost  int
}

func newUserStore(bcryptCost int) *userStore {
	return &userStore{
		users: make(map[string]*user),
		cost:  bcryptCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userStore) create(request models.SignupRequest) (models.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), s.cost)
	if err != nil {
		return models.Profile{}, fmt.Errorf("hash password: %w", err)
	}

	key := normalizeEmail(request.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return models.Profile{}, ErrEmailAlreadyRegistered
	}

	u := &user{
		profile:      models.Profile{Name: strings.TrimSpace(request.Name), Email: key},
		passwordHash: hash,
	}
	s.users[key] = u

	return u.profile, nil
}

func (s *userStore) authenticate(email, password string) (models.Profile, error) {
	s.mu.RLock()
	u, ok := s.users[normalizeEmail(email)]
	s.mu.RUnlock()
	if !ok {
		return models.Profile{}, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return models.Profile{}, ErrWrongPassword
	}
	return u.profile, nil
}

func (s *userStore) get(email string) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[normalizeEmail(email)]
	if !ok {
		return models.Profile{}, ErrUserNotFound
	}
	return u.profile, nil
}

// update replaces name and bio. The e-mail is the account key and never
// changes.
func (s *userStore) update(email string, update models.ProfileUpdate) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[normalizeEmail(email)]
	if !ok {
		return models.Profile{}, ErrUserNotFound
	}

	u.profile.Name = update.Name
	u.profile.Bio = update.Bio
	return u.profile, nil
}

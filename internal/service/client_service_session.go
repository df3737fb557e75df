package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-profile-keeper/internal/adapter"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/store"
	"github.com/MKhiriev/go-profile-keeper/internal/utils"
	"github.com/MKhiriev/go-profile-keeper/models"
)

type clientSessionService struct {
	tokens  store.TokenStore
	adapter adapter.ServerAdapter
	now     func() time.Time

	mu sync.Mutex
	// status is never models.SessionAuthenticating; a login in flight is tracked by
	// loggingIn and overlays it in Status.
	status    models.SessionStatus
	loggingIn bool
	restored  bool
	token     string
	profile   *models.Profile
	// generation changes whenever the session identity does (login success,
	// logout). Completions carrying an older generation are dropped.
	generation uint64

	logger *logger.Logger
}

// NewClientSessionService returns a [ClientSessionService] in the restoring
// state.
func NewClientSessionService(tokens store.TokenStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		tokens:  tokens,
		adapter: serverAdapter,
		now:     time.Now,
		status:  models.SessionRestoring,
		logger:  logger,
	}
}

func (s *clientSessionService) Status() models.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loggingIn {
		return models.SessionAuthenticating
	}
	return s.status
}

func (s *clientSessionService) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token != ""
}

func (s *clientSessionService) Profile() (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return models.Profile{}, false
	}
	return *s.profile, true
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Profile, bool) {
	s.mu.Lock()
	if s.restored {
		defer s.mu.Unlock()
		if s.profile == nil {
			return models.Profile{}, false
		}
		return *s.profile, true
	}
	s.restored = true
	gen := s.generation
	s.mu.Unlock()

	token, ok, err := s.tokens.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.Restore").Msg("reading stored token failed")
		s.finishRestore(gen)
		return models.Profile{}, false
	}
	if !ok {
		s.logger.Debug().Str("func", "clientSessionService.Restore").Msg("no stored token")
		s.finishRestore(gen)
		return models.Profile{}, false
	}

	if expiresAt, isJWT := utils.TokenExpiry(token); isJWT && !s.now().Before(expiresAt) {
		s.logger.Info().Time("expired_at", expiresAt).Str("func", "clientSessionService.Restore").Msg("stored token is expired")
		s.evictRestored(ctx, gen)
		return models.Profile{}, false
	}

	profile, err := s.adapter.FetchProfile(ctx, token)
	if err != nil {
		s.logger.Info().Err(err).Str("func", "clientSessionService.Restore").Msg("stored token rejected")
		s.evictRestored(ctx, gen)
		return models.Profile{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return models.Profile{}, false
	}

	s.token = token
	s.profile = &profile
	s.status = models.SessionAuthenticated
	s.logger.Info().Str("func", "clientSessionService.Restore").Msg("session restored")

	return profile, true
}

// finishRestore leaves the session anonymous unless something else already
// moved it on.
func (s *clientSessionService) finishRestore(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen == s.generation && s.status == models.SessionRestoring {
		s.status = models.SessionAnonymous
	}
}

// evictRestored removes the stored token that failed restoration. A newer
// session may have persisted its own token meanwhile, so the store is only
// touched while gen is current.
func (s *clientSessionService) evictRestored(ctx context.Context, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}
	if s.status == models.SessionRestoring {
		s.status = models.SessionAnonymous
	}
	if err := s.tokens.Remove(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.evictRestored").Msg("removing stored token failed")
	}
}

func (s *clientSessionService) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	s.mu.Lock()
	if s.loggingIn {
		s.mu.Unlock()
		return models.LoginResult{}, ErrOperationInProgress
	}
	s.loggingIn = true
	gen := s.generation
	s.mu.Unlock()

	token, err := s.adapter.Login(ctx, models.Credentials{Email: email, Password: password})

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return models.LoginResult{}, ErrStaleSession
	}
	s.loggingIn = false
	if err != nil {
		s.mu.Unlock()
		s.logger.Info().Err(err).Str("func", "clientSessionService.Login").Msg("login failed")
		return models.LoginResult{}, err
	}

	s.generation++
	gen = s.generation
	s.token = token.AccessToken
	s.profile = nil
	s.status = models.SessionAuthenticated
	if err = s.tokens.Set(ctx, token.AccessToken); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.Login").Msg("persisting token failed")
	}
	s.mu.Unlock()

	profile, err := s.fetchProfile(ctx, gen, token.AccessToken)
	if err != nil {
		if errors.Is(err, ErrStaleSession) {
			return models.LoginResult{}, err
		}
		return models.LoginResult{ProfileErr: err}, nil
	}

	return models.LoginResult{Profile: profile}, nil
}

func (s *clientSessionService) Signup(ctx context.Context, name, email, password string) error {
	err := s.adapter.Signup(ctx, models.SignupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		s.logger.Info().Err(err).Str("func", "clientSessionService.Signup").Msg("signup failed")
		return err
	}
	return nil
}

func (s *clientSessionService) LoadProfile(ctx context.Context) (models.Profile, error) {
	gen, token, err := s.current()
	if err != nil {
		return models.Profile{}, err
	}

	return s.fetchProfile(ctx, gen, token)
}

func (s *clientSessionService) UpdateProfile(ctx context.Context, name, bio string) (models.Profile, error) {
	gen, token, err := s.current()
	if err != nil {
		return models.Profile{}, err
	}

	profile, err := s.adapter.UpdateProfile(ctx, token, models.ProfileUpdate{Name: name, Bio: bio})

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return models.Profile{}, ErrStaleSession
	}
	if err != nil {
		s.logger.Info().Err(err).Str("func", "clientSessionService.UpdateProfile").Msg("update failed")
		return models.Profile{}, err
	}

	s.profile = &profile
	return profile, nil
}

func (s *clientSessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.restored = true
	s.loggingIn = false
	s.token = ""
	s.profile = nil
	s.status = models.SessionAnonymous

	if err := s.tokens.Remove(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.Logout").Msg("removing stored token failed")
	}
	s.logger.Info().Str("func", "clientSessionService.Logout").Msg("logged out")
}

// current returns the generation and token of an authenticated session.
func (s *clientSessionService) current() (uint64, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(s.token) == "" {
		return 0, "", ErrNotAuthenticated
	}
	return s.generation, s.token, nil
}

func (s *clientSessionService) fetchProfile(ctx context.Context, gen uint64, token string) (models.Profile, error) {
	profile, err := s.adapter.FetchProfile(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return models.Profile{}, ErrStaleSession
	}
	if err != nil {
		s.logger.Info().Err(err).Str("func", "clientSessionService.fetchProfile").Msg("profile fetch failed")
		return models.Profile{}, err
	}

	s.profile = &profile
	return profile, nil
}

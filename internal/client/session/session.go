// Package session owns the authenticated user of the running client.
//
// A Session is created once at startup, hydrated from the local store and
// passed by reference to every component that needs to know who is logged
// in. Only login, register, logout and token refresh write to it; everything
// else reads. A nil current user means "not logged in".
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptyToken = errors.New("empty session token")

type Session struct {
	mu    sync.RWMutex
	user  *models.User
	token string

	store Store
	log   logging.Logger
	now   func() time.Time
}

func New(store Store, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{store: store, log: log, now: time.Now}
}

// Hydrate restores the persisted session. Corrupt or expired records are
// erased and leave the session logged out; only store failures are errors.
func (s *Session) Hydrate(ctx context.Context) error {
	token, raw, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if token == "" || raw == "" {
		s.reset()
		return nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Warn(ctx, "discarding unreadable persisted user", "error", err)
		return s.discard(ctx)
	}

	if exp, ok := tokenExpiry(token); ok && !s.now().Before(exp) {
		s.log.Info(ctx, "persisted token expired", "expired_at", exp)
		return s.discard(ctx)
	}

	s.mu.Lock()
	s.user = &u
	s.token = token
	s.mu.Unlock()

	s.log.Debug(ctx, "session restored", "user", u.Username)
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// server remains the authority on validity. Opaque tokens report no expiry.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Session) discard(ctx context.Context) error {
	s.reset()
	if err := s.store.Erase(ctx); err != nil {
		return fmt.Errorf("erase session: %w", err)
	}
	return nil
}

func (s *Session) reset() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
}

// Replace installs the result of a successful login or register. The
// in-memory session changes only after the store accepted it.
func (s *Session) Replace(ctx context.Context, resp models.AuthResponse) error {
	if resp.Token == "" {
		return ErrEmptyToken
	}

	raw, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.Save(ctx, resp.Token, string(raw)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	u := resp.User
	s.mu.Lock()
	s.user = &u
	s.token = resp.Token
	s.mu.Unlock()

	s.log.Info(ctx, "session started", "user", u.Username, "role", u.Role)
	return nil
}

// SetToken swaps the token after a refresh, keeping the current user.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.RLock()
	u := s.user
	s.mu.RUnlock()
	if u == nil {
		return fmt.Errorf("set token: %w", errNoUser)
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.Save(ctx, token, string(raw)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

var errNoUser = errors.New("no current user")

// Clear logs out. The in-memory session is cleared even when erasing the
// persisted copy fails.
func (s *Session) Clear(ctx context.Context) error {
	s.reset()
	if err := s.store.Erase(ctx); err != nil {
		return fmt.Errorf("erase session: %w", err)
	}
	s.log.Info(ctx, "session cleared")
	return nil
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

// CurrentUser returns a copy of the current user, or nil when logged out.
func (s *Session) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsSeller is false when logged out.
func (s *Session) IsSeller() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsSeller()
}

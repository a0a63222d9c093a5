// Package userstore owns identity: the registered user list and the
// current session, serialized as text under two fixed keys in a persistent
// key/value area. The rest of the system treats users as opaque identity
// keys and only ever compares them.
package userstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/YoshiBoneDoc/kolauction/internal/auctionerrors"
	"github.com/YoshiBoneDoc/kolauction/internal/kvstore"
	model "github.com/YoshiBoneDoc/kolauction/internal/models"
	"github.com/YoshiBoneDoc/kolauction/internal/rules"
	"github.com/YoshiBoneDoc/kolauction/utils"
)

// Fixed keys in the persistent area.
const (
	usersKey       = "users"
	currentUserKey = "currentUser"
)

// Store manages registration, login and the current session. Identity
// failures are returned as errors at this boundary; the validation rules
// downstream never see them.
type Store struct {
	mu      sync.RWMutex
	kv      kvstore.Store
	users   []model.User
	current *model.User
}

// New loads any persisted users and session from kv. Corrupt persisted
// text is logged and discarded rather than failing startup.
func New(kv kvstore.Store) *Store {
	s := &Store{kv: kv}

	if raw, ok := kv.Get(usersKey); ok {
		if err := json.Unmarshal([]byte(raw), &s.users); err != nil {
			utils.Warn("Discarding unreadable persisted user list", map[string]any{"error": err.Error()})
			s.users = nil
		}
	}
	if raw, ok := kv.Get(currentUserKey); ok {
		var u model.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			utils.Warn("Discarding unreadable persisted session", map[string]any{"error": err.Error()})
		} else {
			s.current = &u
		}
	}
	return s
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Store) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("register: %w", auctionerrors.ErrMissingFields)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if rules.SameIdentity(u.Username, username) {
			return fmt.Errorf("register %s: %w", username, auctionerrors.ErrDuplicateUser)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("register %s: hash password: %w", username, err)
	}

	s.users = append(s.users, model.User{Username: username, PasswordHash: string(hash)})
	if err := s.persistUsers(); err != nil {
		s.users = s.users[:len(s.users)-1]
		return err
	}
	return nil
}

// Login verifies credentials and makes the user the current session.
func (s *Store) Login(username, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if !rules.SameIdentity(u.Username, username) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}

		raw, err := json.Marshal(u)
		if err != nil {
			return model.User{}, fmt.Errorf("login %s: encode session: %w", username, err)
		}
		if err := s.kv.Set(currentUserKey, string(raw)); err != nil {
			return model.User{}, fmt.Errorf("login %s: persist session: %w", username, err)
		}
		user := u
		s.current = &user
		return user, nil
	}
	return model.User{}, fmt.Errorf("login %s: %w", username, auctionerrors.ErrInvalidCredentials)
}

// Logout clears the current session
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.kv.Delete(currentUserKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Current returns the logged-in user, if any.
func (s *Store) Current() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return model.User{}, false
	}
	return *s.current, true
}

// Users returns a copy of the registered user list.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

func (s *Store) persistUsers() error {
	raw, err := json.Marshal(s.users)
	if err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	if err := s.kv.Set(usersKey, string(raw)); err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	return nil
}

// Package profile persists the small per-session customer record used to
// prefill the booking form.
package profile

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/agendei-app/agendei-service/internal/domain"
	"github.com/agendei-app/agendei-service/internal/infra/storage"
)

// Storage is the persistence adapter the store reads and writes through.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Logger is the logging interface used by the store.
type Logger interface {
	Warn(format string, v ...interface{})
}

// Patch is a partial profile update; nil fields are left untouched.
type Patch struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// Store reads and writes profile records keyed by session ID. It holds no
// in-memory state; each call goes through the adapter.
type Store struct {
	storage Storage
	logger  Logger
}

// New returns a profile store over the given adapter.
func New(st Storage, logger Logger) *Store {
	return &Store{storage: st, logger: logger}
}

// Get returns the session's profile. Missing or malformed records read as
// an empty profile.
func (s *Store) Get(ctx context.Context, sessionID string) domain.Profile {
	raw, err := s.storage.Read(ctx, key(sessionID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("profile: load failed for session %s: %v", sessionID, err)
		}
		return domain.Profile{}
	}

	var p domain.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("profile: malformed record for session %s: %v", sessionID, err)
		return domain.Profile{}
	}
	return p
}

// Update merges the patch into the session's profile and persists it.
// Write failures are logged and swallowed.
func (s *Store) Update(ctx context.Context, sessionID string, patch Patch) domain.Profile {
	p := s.Get(ctx, sessionID)
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.PhotoURL != nil {
		p.PhotoURL = *patch.PhotoURL
	}

	raw, err := json.Marshal(p)
	if err != nil {
		s.logger.Warn("profile: marshal record for session %s: %v", sessionID, err)
		return p
	}
	if err := s.storage.Write(ctx, key(sessionID), raw); err != nil {
		s.logger.Warn("profile: persist failed for session %s: %v", sessionID, err)
	}
	return p
}

// ClearPhoto removes the stored photo from the session's profile.
func (s *Store) ClearPhoto(ctx context.Context, sessionID string) domain.Profile {
	empty := ""
	return s.Update(ctx, sessionID, Patch{PhotoURL: &empty})
}

// Reset deletes the session's profile record.
func (s *Store) Reset(ctx context.Context, sessionID string) {
	if err := s.storage.Delete(ctx, key(sessionID)); err != nil {
		s.logger.Warn("profile: reset failed for session %s: %v", sessionID, err)
	}
}

func key(sessionID string) string {
	return storage.KeyProfilePrefix + sessionID
}

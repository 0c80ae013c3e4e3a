// Package settings holds the business configuration singleton and its
// persistence lifecycle. The store performs no range validation; the
// settings service checks bounds before calling Update.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/agendei-app/agendei-service/internal/domain"
	"github.com/agendei-app/agendei-service/internal/infra/storage"
)

// Store keeps the settings in memory and mirrors every change to the
// storage adapter. Persistence write failures are logged and swallowed:
// the in-memory state stays consistent for the session, the change is
// simply lost on the next load.
type Store struct {
	mu       sync.RWMutex
	storage  Storage
	logger   Logger
	settings domain.Settings
}

// New returns a store initialized with the factory defaults. Call Load to
// pick up the persisted record.
func New(st Storage, logger Logger) *Store {
	return &Store{
		storage:  st,
		logger:   logger,
		settings: domain.DefaultSettings(),
	}
}

// Load reads the persisted settings record. A missing or malformed payload
// leaves the defaults in place; stored fields shallow-merge over defaults,
// so records saved by older shapes fill missing fields from the factory
// values.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.storage.Read(ctx, storage.KeySettings)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("settings: load failed, keeping defaults: %v", err)
		}
		return
	}

	next := domain.DefaultSettings()
	if err := json.Unmarshal(raw, &next); err != nil {
		s.logger.Warn("settings: malformed record, keeping defaults: %v", err)
		return
	}

	s.mu.Lock()
	s.settings = next
	s.mu.Unlock()
}

// Get returns a deep-copy snapshot of the current settings.
func (s *Store) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// Update merges the patch into the current settings and persists the full
// resulting record.
func (s *Store) Update(ctx context.Context, patch Patch) domain.Settings {
	s.mu.Lock()
	next := s.settings.Clone()
	patch.applyTo(&next)
	s.settings = next
	s.mu.Unlock()

	s.persist(ctx)
	return next.Clone()
}

// Save re-persists the current in-memory state. Redundant with Update, kept
// for explicit "save" gestures in the admin panel.
func (s *Store) Save(ctx context.Context) {
	s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) {
	s.mu.RLock()
	raw, err := json.Marshal(s.settings)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error("settings: marshal record: %v", err)
		return
	}
	if err := s.storage.Write(ctx, storage.KeySettings, raw); err != nil {
		s.logger.Warn("settings: persist failed, in-memory state kept: %v", err)
	}
}

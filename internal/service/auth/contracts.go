package auth

import (
	"context"

	"github.com/agendei-app/agendei-service/internal/domain"
	settingsStore "github.com/agendei-app/agendei-service/internal/store/settings"
)

// SettingsStore gives access to the stored admin credential.
type SettingsStore interface {
	Get() domain.Settings
	Update(ctx context.Context, patch settingsStore.Patch) domain.Settings
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

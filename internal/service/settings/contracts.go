package settings

import (
	"context"

	"github.com/agendei-app/agendei-service/internal/domain"
	settingsStore "github.com/agendei-app/agendei-service/internal/store/settings"
)

// SettingsStore is the store interface the service consumes.
type SettingsStore interface {
	Get() domain.Settings
	Update(ctx context.Context, patch settingsStore.Patch) domain.Settings
	Save(ctx context.Context)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

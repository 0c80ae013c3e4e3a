package get_settings

import (
	"context"

	"github.com/agendei-app/agendei-service/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context) *models.SettingsResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

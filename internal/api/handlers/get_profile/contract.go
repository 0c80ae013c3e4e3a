package get_profile

import (
	"context"

	"github.com/agendei-app/agendei-service/internal/domain"
)

type ProfileStore interface {
	Get(ctx context.Context, sessionID string) domain.Profile
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

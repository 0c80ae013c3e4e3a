package update_profile

import (
	"context"

	"github.com/agendei-app/agendei-service/internal/domain"
	profileStore "github.com/agendei-app/agendei-service/internal/store/profile"
)

type ProfileStore interface {
	Update(ctx context.Context, sessionID string, patch profileStore.Patch) domain.Profile
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package add_cart_item

import (
	"github.com/agendei-app/agendei-service/internal/domain"
)

type CartStore interface {
	Add(sessionID string, item domain.ServiceItem)
	Get(sessionID string) []domain.CartLine
}

type SettingsProvider interface {
	Get() domain.Settings
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

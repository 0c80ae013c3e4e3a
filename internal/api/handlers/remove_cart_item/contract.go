package remove_cart_item

import (
	"github.com/agendei-app/agendei-service/internal/domain"
)

type CartStore interface {
	Remove(sessionID, itemID string)
	Get(sessionID string) []domain.CartLine
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package change_password

import "context"

type AuthService interface {
	ChangePassword(ctx context.Context, current, next string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

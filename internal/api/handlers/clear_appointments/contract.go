package clear_appointments

import "context"

type AppointmentStore interface {
	Count() int
	ClearAll(ctx context.Context)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_appointments

import (
	"github.com/agendei-app/agendei-service/internal/domain"
)

type AppointmentStore interface {
	List() []domain.Appointment
	Count() int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

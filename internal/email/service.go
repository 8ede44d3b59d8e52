package email

import (
	"context"

	"github.com/wizardXds/medicare/internal/model"
)

// Service sends patient-facing notification emails.
type Service interface {
	SendAppointmentConfirmation(ctx context.Context, to, name string, appointment *model.Appointment) error
}

// NopService is used when SMTP is not configured.
type NopService struct{}

func (NopService) SendAppointmentConfirmation(context.Context, string, string, *model.Appointment) error {
	return nil
}

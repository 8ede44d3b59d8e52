package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/wizardXds/medicare/internal/config"
	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/pkg/metrics"
)

type smtpService struct {
	dialer  *gomail.Dialer
	from    string
	metrics *metrics.Metrics
}

func NewSMTPService(cfg config.SMTPConfig, m *metrics.Metrics) Service {
	return &smtpService{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		metrics: m,
	}
}

func (s *smtpService) SendAppointmentConfirmation(_ context.Context, to, name string, appointment *model.Appointment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your appointment is confirmed")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour appointment on %s at %s (%d minutes, %s) has been confirmed.\n\nMediCare",
		name, appointment.Date, appointment.Time, appointment.Duration, appointment.Type,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		if s.metrics != nil {
			s.metrics.EmailsFailed.Inc()
		}
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	if s.metrics != nil {
		s.metrics.EmailsSent.Inc()
	}
	return nil
}

package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/wizardXds/medicare/internal/email"
	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
	"github.com/wizardXds/medicare/internal/service/event"
	apperrors "github.com/wizardXds/medicare/pkg/errors"
)

type Service struct {
	repo     repository.AppointmentRepository
	userRepo repository.UserRepository
	events   *event.Publisher
	emails   email.Service
}

func NewService(repo repository.AppointmentRepository, userRepo repository.UserRepository,
	events *event.Publisher, emails email.Service) *Service {
	if emails == nil {
		emails = email.NopService{}
	}
	return &Service{repo: repo, userRepo: userRepo, events: events, emails: emails}
}

// Create books an appointment. Omitted fields get the booking defaults:
// 30 minutes, pending, in-person. Patient and doctor ids are stored as
// given, without an existence check.
func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	appointment := &model.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  model.DefaultAppointmentDuration,
		Status:    model.AppointmentStatusPending,
		Type:      model.AppointmentTypeInPerson,
		Notes:     req.Notes,
	}
	if req.Duration != nil {
		appointment.Duration = *req.Duration
	}
	if req.Status != "" {
		appointment.Status = model.AppointmentStatus(req.Status)
	}
	if req.Type != "" {
		appointment.Type = model.AppointmentType(req.Type)
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.events.Publish(ctx, "appointment.created", appointment)
	if appointment.Status == model.AppointmentStatusConfirmed {
		s.notifyConfirmation(ctx, appointment)
	}
	return appointment, nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Appointment", err)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments by patient: %w", err)
	}
	return appointments, nil
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments by doctor: %w", err)
	}
	return appointments, nil
}

func (s *Service) Update(ctx context.Context, id int, patch *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	previous, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Appointment", err)
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	s.events.Publish(ctx, "appointment.updated", appointment)
	if previous.Status != model.AppointmentStatusConfirmed && appointment.Status == model.AppointmentStatusConfirmed {
		s.notifyConfirmation(ctx, appointment)
	}
	return appointment, nil
}

func (s *Service) notifyConfirmation(ctx context.Context, appointment *model.Appointment) {
	patient, err := s.userRepo.Get(ctx, appointment.PatientID)
	if err != nil {
		// Dangling patient ids are tolerated at create time, so a missing
		// patient just means nobody to notify.
		return
	}

	if err := s.emails.SendAppointmentConfirmation(ctx, patient.Email, patient.FirstName, appointment); err != nil {
		log.Warn().Err(err).Int("appointment_id", appointment.ID).Msg("failed to send confirmation email")
	}
}

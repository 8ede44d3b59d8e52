package prescription

import (
	"context"
	"errors"
	"fmt"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
	"github.com/wizardXds/medicare/internal/service/event"
	apperrors "github.com/wizardXds/medicare/pkg/errors"
)

type Service struct {
	repo   repository.PrescriptionRepository
	events *event.Publisher
}

func NewService(repo repository.PrescriptionRepository, events *event.Publisher) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error) {
	prescription := &model.Prescription{
		PatientID:      req.PatientID,
		DoctorID:       req.DoctorID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Instructions:   req.Instructions,
		Status:         model.PrescriptionStatusActive,
	}
	if req.Status != "" {
		prescription.Status = model.PrescriptionStatus(req.Status)
	}

	if err := s.repo.Create(ctx, prescription); err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}

	s.events.Publish(ctx, "prescription.created", prescription)
	return prescription, nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.Prescription, error) {
	prescription, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Prescription", err)
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return prescription, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int) ([]*model.Prescription, error) {
	prescriptions, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions by patient: %w", err)
	}
	return prescriptions, nil
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int) ([]*model.Prescription, error) {
	prescriptions, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions by doctor: %w", err)
	}
	return prescriptions, nil
}

func (s *Service) Update(ctx context.Context, id int, patch *model.UpdatePrescriptionRequest) (*model.Prescription, error) {
	prescription, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Prescription", err)
		}
		return nil, fmt.Errorf("failed to update prescription: %w", err)
	}

	s.events.Publish(ctx, "prescription.updated", prescription)
	return prescription, nil
}

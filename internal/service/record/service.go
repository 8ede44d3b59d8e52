// Package record is the medical-record service: chart entries written by
// doctors, queried per patient.
package record

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
	repo   repository.MedicalRecordRepository
	events *event.Publisher
}

func NewService(repo repository.MedicalRecordRepository, events *event.Publisher) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) Create(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error) {
	record := &model.MedicalRecord{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		RecordType:  req.RecordType,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		FileURL:     req.FileURL,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create medical record: %w", err)
	}

	s.events.Publish(ctx, "medical_record.created", record)
	return record, nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.MedicalRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Medical record", err)
		}
		return nil, fmt.Errorf("failed to get medical record: %w", err)
	}
	return record, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int) ([]*model.MedicalRecord, error) {
	records, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}

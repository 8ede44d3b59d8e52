package hospital

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
	repo   repository.HospitalRepository
	events *event.Publisher
}

func NewService(repo repository.HospitalRepository, events *event.Publisher) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) Create(ctx context.Context, req *model.CreateHospitalRequest) (*model.Hospital, error) {
	hospital := &model.Hospital{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Phone:    req.Phone,
		Email:    req.Email,
		Website:  req.Website,
		ImageURL: req.ImageURL,
	}

	if err := s.repo.Create(ctx, hospital); err != nil {
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}

	s.events.Publish(ctx, "hospital.created", hospital)
	return hospital, nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.Hospital, error) {
	hospital, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Hospital", err)
		}
		return nil, fmt.Errorf("failed to get hospital: %w", err)
	}
	return hospital, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Hospital, error) {
	hospitals, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	return hospitals, nil
}

func (s *Service) Update(ctx context.Context, id int, patch *model.UpdateHospitalRequest) (*model.Hospital, error) {
	hospital, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Hospital", err)
		}
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}

	s.events.Publish(ctx, "hospital.updated", hospital)
	return hospital, nil
}

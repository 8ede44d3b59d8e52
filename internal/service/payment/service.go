package payment

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
	repo   repository.PaymentRepository
	events *event.Publisher
}

func NewService(repo repository.PaymentRepository, events *event.Publisher) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePaymentRequest) (*model.Payment, error) {
	payment := &model.Payment{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Status:        model.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}
	if req.Status != "" {
		payment.Status = model.PaymentStatus(req.Status)
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.events.Publish(ctx, "payment.created", payment)
	return payment, nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.Payment, error) {
	payment, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Payment", err)
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int) ([]*model.Payment, error) {
	payments, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *Service) Update(ctx context.Context, id int, patch *model.UpdatePaymentRequest) (*model.Payment, error) {
	payment, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Payment", err)
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	s.events.Publish(ctx, "payment.updated", payment)
	return payment, nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
)

type paymentRepository struct {
	mu     sync.RWMutex
	byID   map[int]*model.Payment
	order  []int
	nextID int
}

func newPaymentRepository() *paymentRepository {
	return &paymentRepository{byID: make(map[int]*model.Payment), nextID: 1}
}

func (r *paymentRepository) Create(_ context.Context, payment *model.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment.ID = r.nextID
	r.nextID++
	payment.CreatedAt = time.Now().UTC()

	stored := *payment
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *paymentRepository) Get(_ context.Context, id int) (*model.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *payment
	return &out, nil
}

func (r *paymentRepository) ListByPatient(_ context.Context, patientID int) ([]*model.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]*model.Payment, 0)
	for _, id := range r.order {
		if payment := r.byID[id]; payment.PatientID == patientID {
			out := *payment
			payments = append(payments, &out)
		}
	}
	return payments, nil
}

func (r *paymentRepository) Update(_ context.Context, id int, patch *model.UpdatePaymentRequest) (*model.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if patch.Status != nil {
		payment.Status = model.PaymentStatus(*patch.Status)
	}
	if patch.PaymentMethod != nil {
		payment.PaymentMethod = patch.PaymentMethod
	}
	if patch.TransactionID != nil {
		payment.TransactionID = patch.TransactionID
	}

	out := *payment
	return &out, nil
}

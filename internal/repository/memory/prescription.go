package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
)

type prescriptionRepository struct {
	mu     sync.RWMutex
	byID   map[int]*model.Prescription
	order  []int
	nextID int
}

func newPrescriptionRepository() *prescriptionRepository {
	return &prescriptionRepository{byID: make(map[int]*model.Prescription), nextID: 1}
}

func (r *prescriptionRepository) Create(_ context.Context, prescription *model.Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prescription.ID = r.nextID
	r.nextID++
	prescription.CreatedAt = time.Now().UTC()

	stored := *prescription
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *prescriptionRepository) Get(_ context.Context, id int) (*model.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prescription, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *prescription
	return &out, nil
}

func (r *prescriptionRepository) ListByPatient(_ context.Context, patientID int) ([]*model.Prescription, error) {
	return r.list(func(p *model.Prescription) bool { return p.PatientID == patientID })
}

func (r *prescriptionRepository) ListByDoctor(_ context.Context, doctorID int) ([]*model.Prescription, error) {
	return r.list(func(p *model.Prescription) bool { return p.DoctorID == doctorID })
}

func (r *prescriptionRepository) list(match func(*model.Prescription) bool) ([]*model.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prescriptions := make([]*model.Prescription, 0)
	for _, id := range r.order {
		if prescription := r.byID[id]; match(prescription) {
			out := *prescription
			prescriptions = append(prescriptions, &out)
		}
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Update(_ context.Context, id int, patch *model.UpdatePrescriptionRequest) (*model.Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prescription, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if patch.MedicationName != nil {
		prescription.MedicationName = *patch.MedicationName
	}
	if patch.Dosage != nil {
		prescription.Dosage = *patch.Dosage
	}
	if patch.Frequency != nil {
		prescription.Frequency = *patch.Frequency
	}
	if patch.StartDate != nil {
		prescription.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		prescription.EndDate = patch.EndDate
	}
	if patch.Instructions != nil {
		prescription.Instructions = patch.Instructions
	}
	if patch.Status != nil {
		prescription.Status = model.PrescriptionStatus(*patch.Status)
	}

	out := *prescription
	return &out, nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
)

type medicalRecordRepository struct {
	mu     sync.RWMutex
	byID   map[int]*model.MedicalRecord
	order  []int
	nextID int
}

func newMedicalRecordRepository() *medicalRecordRepository {
	return &medicalRecordRepository{byID: make(map[int]*model.MedicalRecord), nextID: 1}
}

func (r *medicalRecordRepository) Create(_ context.Context, record *model.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = r.nextID
	r.nextID++
	record.CreatedAt = time.Now().UTC()

	stored := *record
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *medicalRecordRepository) Get(_ context.Context, id int) (*model.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *record
	return &out, nil
}

func (r *medicalRecordRepository) ListByPatient(_ context.Context, patientID int) ([]*model.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.MedicalRecord, 0)
	for _, id := range r.order {
		if record := r.byID[id]; record.PatientID == patientID {
			out := *record
			records = append(records, &out)
		}
	}
	return records, nil
}

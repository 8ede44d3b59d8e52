package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
)

type hospitalRepository struct {
	mu     sync.RWMutex
	byID   map[int]*model.Hospital
	order  []int
	nextID int
}

func newHospitalRepository() *hospitalRepository {
	return &hospitalRepository{byID: make(map[int]*model.Hospital), nextID: 1}
}

func (r *hospitalRepository) Create(_ context.Context, hospital *model.Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hospital.ID = r.nextID
	r.nextID++
	hospital.CreatedAt = time.Now().UTC()

	stored := *hospital
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *hospitalRepository) Get(_ context.Context, id int) (*model.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hospital, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *hospital
	return &out, nil
}

func (r *hospitalRepository) List(_ context.Context) ([]*model.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hospitals := make([]*model.Hospital, 0, len(r.order))
	for _, id := range r.order {
		out := *r.byID[id]
		hospitals = append(hospitals, &out)
	}
	return hospitals, nil
}

func (r *hospitalRepository) Update(_ context.Context, id int, patch *model.UpdateHospitalRequest) (*model.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hospital, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if patch.Name != nil {
		hospital.Name = *patch.Name
	}
	if patch.Address != nil {
		hospital.Address = *patch.Address
	}
	if patch.City != nil {
		hospital.City = *patch.City
	}
	if patch.State != nil {
		hospital.State = *patch.State
	}
	if patch.ZipCode != nil {
		hospital.ZipCode = *patch.ZipCode
	}
	if patch.Phone != nil {
		hospital.Phone = patch.Phone
	}
	if patch.Email != nil {
		hospital.Email = patch.Email
	}
	if patch.Website != nil {
		hospital.Website = patch.Website
	}
	if patch.ImageURL != nil {
		hospital.ImageURL = patch.ImageURL
	}

	out := *hospital
	return &out, nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
)

type appointmentRepository struct {
	mu     sync.RWMutex
	byID   map[int]*model.Appointment
	order  []int
	nextID int
}

func newAppointmentRepository() *appointmentRepository {
	return &appointmentRepository{byID: make(map[int]*model.Appointment), nextID: 1}
}

func (r *appointmentRepository) Create(_ context.Context, appointment *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment.ID = r.nextID
	r.nextID++
	appointment.CreatedAt = time.Now().UTC()

	stored := *appointment
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *appointmentRepository) Get(_ context.Context, id int) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *appointment
	return &out, nil
}

func (r *appointmentRepository) ListByPatient(_ context.Context, patientID int) ([]*model.Appointment, error) {
	return r.list(func(a *model.Appointment) bool { return a.PatientID == patientID })
}

func (r *appointmentRepository) ListByDoctor(_ context.Context, doctorID int) ([]*model.Appointment, error) {
	return r.list(func(a *model.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *appointmentRepository) list(match func(*model.Appointment) bool) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]*model.Appointment, 0)
	for _, id := range r.order {
		if appointment := r.byID[id]; match(appointment) {
			out := *appointment
			appointments = append(appointments, &out)
		}
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(_ context.Context, id int, patch *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if patch.Date != nil {
		appointment.Date = *patch.Date
	}
	if patch.Time != nil {
		appointment.Time = *patch.Time
	}
	if patch.Duration != nil {
		appointment.Duration = *patch.Duration
	}
	if patch.Status != nil {
		appointment.Status = model.AppointmentStatus(*patch.Status)
	}
	if patch.Type != nil {
		appointment.Type = model.AppointmentType(*patch.Type)
	}
	if patch.Notes != nil {
		appointment.Notes = patch.Notes
	}

	out := *appointment
	return &out, nil
}

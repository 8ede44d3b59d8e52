package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			patient_id, doctor_id, date, time, duration, status, type, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.Date,
		appointment.Time,
		appointment.Duration,
		appointment.Status,
		appointment.Type,
		appointment.Notes,
	).Scan(&appointment.ID, &appointment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, `SELECT * FROM appointments WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID int) ([]*model.Appointment, error) {
	appointments := make([]*model.Appointment, 0)
	if err := r.db.SelectContext(ctx, &appointments,
		`SELECT * FROM appointments WHERE patient_id = $1 ORDER BY id`, patientID); err != nil {
		return nil, fmt.Errorf("failed to list appointments by patient: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID int) ([]*model.Appointment, error) {
	appointments := make([]*model.Appointment, 0)
	if err := r.db.SelectContext(ctx, &appointments,
		`SELECT * FROM appointments WHERE doctor_id = $1 ORDER BY id`, doctorID); err != nil {
		return nil, fmt.Errorf("failed to list appointments by doctor: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id int, patch *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	var appointment *model.Appointment

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current model.Appointment
		if err := tx.GetContext(ctx, &current, `SELECT * FROM appointments WHERE id = $1 FOR UPDATE`, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return repository.ErrNotFound
			}
			return fmt.Errorf("failed to get appointment: %w", err)
		}

		if patch.Date != nil {
			current.Date = *patch.Date
		}
		if patch.Time != nil {
			current.Time = *patch.Time
		}
		if patch.Duration != nil {
			current.Duration = *patch.Duration
		}
		if patch.Status != nil {
			current.Status = model.AppointmentStatus(*patch.Status)
		}
		if patch.Type != nil {
			current.Type = model.AppointmentType(*patch.Type)
		}
		if patch.Notes != nil {
			current.Notes = patch.Notes
		}

		query := `
			UPDATE appointments SET
				date = $1, time = $2, duration = $3, status = $4, type = $5, notes = $6
			WHERE id = $7
		`
		if _, err := tx.ExecContext(ctx, query,
			current.Date,
			current.Time,
			current.Duration,
			current.Status,
			current.Type,
			current.Notes,
			id,
		); err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}

		appointment = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

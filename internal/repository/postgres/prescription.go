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

type prescriptionRepository struct {
	db *sqlx.DB
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	query := `
		INSERT INTO prescriptions (
			patient_id, doctor_id, medication_name, dosage, frequency,
			start_date, end_date, instructions, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		prescription.PatientID,
		prescription.DoctorID,
		prescription.MedicationName,
		prescription.Dosage,
		prescription.Frequency,
		prescription.StartDate,
		prescription.EndDate,
		prescription.Instructions,
		prescription.Status,
	).Scan(&prescription.ID, &prescription.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *prescriptionRepository) Get(ctx context.Context, id int) (*model.Prescription, error) {
	var prescription model.Prescription
	if err := r.db.GetContext(ctx, &prescription, `SELECT * FROM prescriptions WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return &prescription, nil
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID int) ([]*model.Prescription, error) {
	prescriptions := make([]*model.Prescription, 0)
	if err := r.db.SelectContext(ctx, &prescriptions,
		`SELECT * FROM prescriptions WHERE patient_id = $1 ORDER BY id`, patientID); err != nil {
		return nil, fmt.Errorf("failed to list prescriptions by patient: %w", err)
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) ListByDoctor(ctx context.Context, doctorID int) ([]*model.Prescription, error) {
	prescriptions := make([]*model.Prescription, 0)
	if err := r.db.SelectContext(ctx, &prescriptions,
		`SELECT * FROM prescriptions WHERE doctor_id = $1 ORDER BY id`, doctorID); err != nil {
		return nil, fmt.Errorf("failed to list prescriptions by doctor: %w", err)
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Update(ctx context.Context, id int, patch *model.UpdatePrescriptionRequest) (*model.Prescription, error) {
	var prescription *model.Prescription

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current model.Prescription
		if err := tx.GetContext(ctx, &current, `SELECT * FROM prescriptions WHERE id = $1 FOR UPDATE`, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return repository.ErrNotFound
			}
			return fmt.Errorf("failed to get prescription: %w", err)
		}

		if patch.MedicationName != nil {
			current.MedicationName = *patch.MedicationName
		}
		if patch.Dosage != nil {
			current.Dosage = *patch.Dosage
		}
		if patch.Frequency != nil {
			current.Frequency = *patch.Frequency
		}
		if patch.StartDate != nil {
			current.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			current.EndDate = patch.EndDate
		}
		if patch.Instructions != nil {
			current.Instructions = patch.Instructions
		}
		if patch.Status != nil {
			current.Status = model.PrescriptionStatus(*patch.Status)
		}

		query := `
			UPDATE prescriptions SET
				medication_name = $1, dosage = $2, frequency = $3, start_date = $4,
				end_date = $5, instructions = $6, status = $7
			WHERE id = $8
		`
		if _, err := tx.ExecContext(ctx, query,
			current.MedicationName,
			current.Dosage,
			current.Frequency,
			current.StartDate,
			current.EndDate,
			current.Instructions,
			current.Status,
			id,
		); err != nil {
			return fmt.Errorf("failed to update prescription: %w", err)
		}

		prescription = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prescription, nil
}

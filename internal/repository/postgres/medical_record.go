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

type medicalRecordRepository struct {
	db *sqlx.DB
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (
			patient_id, doctor_id, record_type, title, description, date, file_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		record.PatientID,
		record.DoctorID,
		record.RecordType,
		record.Title,
		record.Description,
		record.Date,
		record.FileURL,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

func (r *medicalRecordRepository) Get(ctx context.Context, id int) (*model.MedicalRecord, error) {
	var record model.MedicalRecord
	if err := r.db.GetContext(ctx, &record, `SELECT * FROM medical_records WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get medical record: %w", err)
	}
	return &record, nil
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID int) ([]*model.MedicalRecord, error) {
	records := make([]*model.MedicalRecord, 0)
	if err := r.db.SelectContext(ctx, &records,
		`SELECT * FROM medical_records WHERE patient_id = $1 ORDER BY id`, patientID); err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}

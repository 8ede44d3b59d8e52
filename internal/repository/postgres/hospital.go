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

type hospitalRepository struct {
	db *sqlx.DB
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *model.Hospital) error {
	query := `
		INSERT INTO hospitals (
			name, address, city, state, zip_code, phone, email, website, image_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		hospital.Name,
		hospital.Address,
		hospital.City,
		hospital.State,
		hospital.ZipCode,
		hospital.Phone,
		hospital.Email,
		hospital.Website,
		hospital.ImageURL,
	).Scan(&hospital.ID, &hospital.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}
	return nil
}

func (r *hospitalRepository) Get(ctx context.Context, id int) (*model.Hospital, error) {
	var hospital model.Hospital
	if err := r.db.GetContext(ctx, &hospital, `SELECT * FROM hospitals WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hospital: %w", err)
	}
	return &hospital, nil
}

func (r *hospitalRepository) List(ctx context.Context) ([]*model.Hospital, error) {
	hospitals := make([]*model.Hospital, 0)
	if err := r.db.SelectContext(ctx, &hospitals, `SELECT * FROM hospitals ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	return hospitals, nil
}

func (r *hospitalRepository) Update(ctx context.Context, id int, patch *model.UpdateHospitalRequest) (*model.Hospital, error) {
	var hospital *model.Hospital

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current model.Hospital
		if err := tx.GetContext(ctx, &current, `SELECT * FROM hospitals WHERE id = $1 FOR UPDATE`, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return repository.ErrNotFound
			}
			return fmt.Errorf("failed to get hospital: %w", err)
		}

		if patch.Name != nil {
			current.Name = *patch.Name
		}
		if patch.Address != nil {
			current.Address = *patch.Address
		}
		if patch.City != nil {
			current.City = *patch.City
		}
		if patch.State != nil {
			current.State = *patch.State
		}
		if patch.ZipCode != nil {
			current.ZipCode = *patch.ZipCode
		}
		if patch.Phone != nil {
			current.Phone = patch.Phone
		}
		if patch.Email != nil {
			current.Email = patch.Email
		}
		if patch.Website != nil {
			current.Website = patch.Website
		}
		if patch.ImageURL != nil {
			current.ImageURL = patch.ImageURL
		}

		query := `
			UPDATE hospitals SET
				name = $1, address = $2, city = $3, state = $4, zip_code = $5,
				phone = $6, email = $7, website = $8, image_url = $9
			WHERE id = $10
		`
		if _, err := tx.ExecContext(ctx, query,
			current.Name,
			current.Address,
			current.City,
			current.State,
			current.ZipCode,
			current.Phone,
			current.Email,
			current.Website,
			current.ImageURL,
			id,
		); err != nil {
			return fmt.Errorf("failed to update hospital: %w", err)
		}

		hospital = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hospital, nil
}

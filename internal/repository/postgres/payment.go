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

type paymentRepository struct {
	db *sqlx.DB
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	query := `
		INSERT INTO payments (
			patient_id, appointment_id, amount, status, payment_method, transaction_id
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		payment.PatientID,
		payment.AppointmentID,
		payment.Amount,
		payment.Status,
		payment.PaymentMethod,
		payment.TransactionID,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id int) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.GetContext(ctx, &payment, `SELECT * FROM payments WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

func (r *paymentRepository) ListByPatient(ctx context.Context, patientID int) ([]*model.Payment, error) {
	payments := make([]*model.Payment, 0)
	if err := r.db.SelectContext(ctx, &payments,
		`SELECT * FROM payments WHERE patient_id = $1 ORDER BY id`, patientID); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (r *paymentRepository) Update(ctx context.Context, id int, patch *model.UpdatePaymentRequest) (*model.Payment, error) {
	var payment *model.Payment

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current model.Payment
		if err := tx.GetContext(ctx, &current, `SELECT * FROM payments WHERE id = $1 FOR UPDATE`, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return repository.ErrNotFound
			}
			return fmt.Errorf("failed to get payment: %w", err)
		}

		if patch.Status != nil {
			current.Status = model.PaymentStatus(*patch.Status)
		}
		if patch.PaymentMethod != nil {
			current.PaymentMethod = patch.PaymentMethod
		}
		if patch.TransactionID != nil {
			current.TransactionID = patch.TransactionID
		}

		query := `
			UPDATE payments SET status = $1, payment_method = $2, transaction_id = $3
			WHERE id = $4
		`
		if _, err := tx.ExecContext(ctx, query,
			current.Status,
			current.PaymentMethod,
			current.TransactionID,
			id,
		); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}

		payment = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

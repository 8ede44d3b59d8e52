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

type userRepository struct {
	db *sqlx.DB
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (
			username, password, first_name, last_name, email,
			phone, dob, role, specialty, bio, profile_image
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Username,
		user.Password,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.DOB,
		user.Role,
		user.Specialty,
		user.Bio,
		user.ProfileImage,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE username = $1`, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	users := make([]*model.User, 0)
	if err := r.db.SelectContext(ctx, &users, `SELECT * FROM users WHERE role = $1 ORDER BY id`, role); err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id int, patch *model.UpdateUserRequest) (*model.User, error) {
	var user *model.User

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current model.User
		if err := tx.GetContext(ctx, &current, `SELECT * FROM users WHERE id = $1 FOR UPDATE`, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return repository.ErrNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		if patch.FirstName != nil {
			current.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			current.LastName = *patch.LastName
		}
		if patch.Email != nil {
			current.Email = *patch.Email
		}
		if patch.Phone != nil {
			current.Phone = patch.Phone
		}
		if patch.DOB != nil {
			current.DOB = patch.DOB
		}
		if patch.Specialty != nil {
			current.Specialty = patch.Specialty
		}
		if patch.Bio != nil {
			current.Bio = patch.Bio
		}
		if patch.ProfileImage != nil {
			current.ProfileImage = patch.ProfileImage
		}

		query := `
			UPDATE users SET
				first_name = $1, last_name = $2, email = $3, phone = $4,
				dob = $5, specialty = $6, bio = $7, profile_image = $8
			WHERE id = $9
		`
		if _, err := tx.ExecContext(ctx, query,
			current.FirstName,
			current.LastName,
			current.Email,
			current.Phone,
			current.DOB,
			current.Specialty,
			current.Bio,
			current.ProfileImage,
			id,
		); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		user = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

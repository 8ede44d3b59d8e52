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

type messageRepository struct {
	db *sqlx.DB
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content, is_read)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.Content,
		message.IsRead,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *messageRepository) Get(ctx context.Context, id int) (*model.Message, error) {
	var message model.Message
	if err := r.db.GetContext(ctx, &message, `SELECT * FROM messages WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return &message, nil
}

func (r *messageRepository) ListByUser(ctx context.Context, userID int) ([]*model.Message, error) {
	messages := make([]*model.Message, 0)
	if err := r.db.SelectContext(ctx, &messages,
		`SELECT * FROM messages WHERE sender_id = $1 OR receiver_id = $1 ORDER BY id`, userID); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) MarkAsRead(ctx context.Context, id int) (*model.Message, error) {
	var message model.Message
	query := `
		UPDATE messages SET is_read = TRUE
		WHERE id = $1
		RETURNING *
	`
	if err := r.db.GetContext(ctx, &message, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark message as read: %w", err)
	}
	return &message, nil
}

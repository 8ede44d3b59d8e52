package message

import (
	"context"
	"errors"
	"fmt"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
	"github.com/wizardXds/medicare/internal/service/event"
	apperrors "github.com/wizardXds/medicare/pkg/errors"
)

type Service struct {
	repo   repository.MessageRepository
	events *event.Publisher
}

func NewService(repo repository.MessageRepository, events *event.Publisher) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) Create(ctx context.Context, req *model.CreateMessageRequest) (*model.Message, error) {
	message := &model.Message{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if req.IsRead != nil {
		message.IsRead = *req.IsRead
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	s.events.Publish(ctx, "message.created", message)
	return message, nil
}

// ListByUser returns the user's conversations: everything they sent or
// received, in insertion order.
func (s *Service) ListByUser(ctx context.Context, userID int) ([]*model.Message, error) {
	messages, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (s *Service) MarkAsRead(ctx context.Context, id int) (*model.Message, error) {
	message, err := s.repo.MarkAsRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Message", err)
		}
		return nil, fmt.Errorf("failed to mark message as read: %w", err)
	}

	s.events.Publish(ctx, "message.read", message)
	return message, nil
}

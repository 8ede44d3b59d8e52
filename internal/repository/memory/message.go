package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
)

type messageRepository struct {
	mu     sync.RWMutex
	byID   map[int]*model.Message
	order  []int
	nextID int
}

func newMessageRepository() *messageRepository {
	return &messageRepository{byID: make(map[int]*model.Message), nextID: 1}
}

func (r *messageRepository) Create(_ context.Context, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.ID = r.nextID
	r.nextID++
	message.CreatedAt = time.Now().UTC()

	stored := *message
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *messageRepository) Get(_ context.Context, id int) (*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	message, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *message
	return &out, nil
}

// ListByUser returns every message the user sent or received.
func (r *messageRepository) ListByUser(_ context.Context, userID int) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*model.Message, 0)
	for _, id := range r.order {
		if message := r.byID[id]; message.SenderID == userID || message.ReceiverID == userID {
			out := *message
			messages = append(messages, &out)
		}
	}
	return messages, nil
}

// MarkAsRead is idempotent: marking an already-read message succeeds and
// leaves it read.
func (r *messageRepository) MarkAsRead(_ context.Context, id int) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	message.IsRead = true
	out := *message
	return &out, nil
}

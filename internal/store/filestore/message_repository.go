package filestore

import (
	"context"

	"church-backend/internal/models"
	"church-backend/internal/store"
)

type MessageRepository struct {
	store *Store
}

func NewMessageRepository(s *Store) *MessageRepository {
	return &MessageRepository{store: s}
}

func (r *MessageRepository) Create(_ context.Context, msg *models.Message) error {
	return r.store.update(func(doc *document) error {
		doc.Messages = append(doc.Messages, *msg)
		return nil
	})
}

func (r *MessageRepository) GetAll(_ context.Context) ([]models.Message, error) {
	var out []models.Message
	err := r.store.view(func(doc *document) error {
		out = append([]models.Message{}, doc.Messages...)
		return nil
	})
	return out, err
}

func (r *MessageRepository) GetByID(_ context.Context, id int64) (*models.Message, error) {
	var out *models.Message
	err := r.store.view(func(doc *document) error {
		for i := range doc.Messages {
			if doc.Messages[i].ID == id {
				msg := doc.Messages[i]
				out = &msg
				return nil
			}
		}
		return store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MessageRepository) MarkRead(_ context.Context, id int64) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Messages {
			if doc.Messages[i].ID == id {
				doc.Messages[i].Read = true
				return nil
			}
		}
		return store.ErrNotFound
	})
}

func (r *MessageRepository) Delete(_ context.Context, id int64) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Messages {
			if doc.Messages[i].ID == id {
				doc.Messages = append(doc.Messages[:i], doc.Messages[i+1:]...)
				return nil
			}
		}
		return store.ErrNotFound
	})
}

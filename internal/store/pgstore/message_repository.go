// Package pgstore implements the store contract on PostgreSQL with
// row-level CRUD per statement. No cross-entity transactions are used;
// per-statement atomicity is all this application relies on.
package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"church-backend/internal/models"
	"church-backend/internal/store"
)

type MessageRepository struct {
	DB *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO messages(id, name, email, phone, subject, body, created_display, is_read)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message, msg.Timestamp, msg.Read,
	)
	return err
}

func (r *MessageRepository) GetAll(ctx context.Context) ([]models.Message, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, email, phone, subject, body, created_display, is_read
		 FROM messages ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Timestamp, &m.Read); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	var m models.Message
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, email, phone, subject, body, created_display, is_read
		 FROM messages WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Timestamp, &m.Read)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `UPDATE messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

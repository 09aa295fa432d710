package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vansh1703/cars/internal/domain"
)

type messageRepository struct {
	db *DB
}

func NewMessageRepository(db *DB) *messageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (name, email, phone, message, is_read)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		msg.Name, msg.Email, msg.Phone, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *messageRepository) List(ctx context.Context) ([]domain.Message, error) {
	query := `
		SELECT id, created_at, name, email, phone, message, is_read
		FROM messages
		ORDER BY created_at DESC
	`
	messages := []domain.Message{}
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) SetRead(ctx context.Context, id string, read bool) (*domain.Message, error) {
	var msg domain.Message
	query := `
		UPDATE messages SET is_read = $2
		WHERE id = $1
		RETURNING id, created_at, name, email, phone, message, is_read
	`
	if err := r.db.GetContext(ctx, &msg, query, id, read); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update message %s: %w", id, err)
	}
	return &msg, nil
}

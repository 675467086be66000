//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"ichat/domain"
)

type IMessageRepository interface {
	Create(ctx context.Context, chatID int64, userID domain.UserID, msgType domain.MessageType, content string) (domain.Message, error)
	List(ctx context.Context, chatID int64, cursorID *int64, limit int) ([]domain.Message, error)
}

type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) IMessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, chatID int64, userID domain.UserID, msgType domain.MessageType, content string) (domain.Message, error) {
	var msg domain.Message
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO messages (chat_id, user_id, type, content, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, chat_id, user_id, type, content, created_at`,
		chatID, userID, msgType, content,
	).Scan(&msg.ID, &msg.ChatID, &msg.UserID, &msg.Type, &msg.Content, &msg.CreatedAt)
	if err != nil {
		return domain.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return msg, nil
}

// List pages backwards through a chat's history: newest first, starting
// below cursorID when one is given.
func (r *MessageRepository) List(ctx context.Context, chatID int64, cursorID *int64, limit int) ([]domain.Message, error) {
	query := `
		SELECT id, chat_id, user_id, type, content, created_at
		FROM messages
		WHERE chat_id = $1`
	args := []any{chatID}

	if cursorID != nil {
		query += ` AND id < $2`
		args = append(args, *cursorID)
	}
	query += fmt.Sprintf(` ORDER BY id DESC LIMIT %d`, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.UserID, &msg.Type, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"ichat/domain"
	"ichat/errors"

	"github.com/samber/lo"
)

type IChatRepository interface {
	Create(ctx context.Context, ownerID domain.UserID, memberIDs []domain.UserID, name string) (domain.Chat, error)
	GetChatByID(ctx context.Context, id int64) (domain.Chat, error)
	GetMembers(ctx context.Context, chatID int64) ([]domain.User, error)
	ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Chat, error)
	Rename(ctx context.Context, chatID int64, ownerID domain.UserID, name string) (domain.Chat, error)
	Delete(ctx context.Context, chatID int64, ownerID domain.UserID) error
	GetUnreadCount(ctx context.Context, chatID int64, userID domain.UserID) (int32, error)
	SetUnreadCount(ctx context.Context, chatID int64, userID domain.UserID, count int32) error
}

type ChatRepository struct {
	db *sql.DB
}

func NewChatRepository(db *sql.DB) IChatRepository {
	return &ChatRepository{db: db}
}

// Create inserts the chat and its membership rows in one transaction.
// The owner is always a member; two members make a private chat, more
// make a group.
func (r *ChatRepository) Create(ctx context.Context, ownerID domain.UserID, memberIDs []domain.UserID, name string) (domain.Chat, error) {
	if !lo.Contains(memberIDs, ownerID) {
		memberIDs = append(memberIDs, ownerID)
	}
	if len(memberIDs) < 2 {
		return domain.Chat{}, errors.ErrTooFewMembers
	}

	chatType := domain.ChatGroup
	if len(memberIDs) == 2 {
		chatType = domain.ChatPrivate
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var chat domain.Chat
	err = tx.QueryRowContext(ctx, `
		INSERT INTO chats (name, owner_id, type, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, name, owner_id, type, created_at`,
		name, ownerID, chatType,
	).Scan(&chat.ID, &chat.Name, &chat.OwnerID, &chat.Type, &chat.CreatedAt)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("insert chat: %w", err)
	}

	for _, memberID := range memberIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO chat_members (chat_id, user_id, created_at)
			VALUES ($1, $2, now())`, chat.ID, memberID); err != nil {
			return domain.Chat{}, fmt.Errorf("insert member %d: %w", memberID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Chat{}, fmt.Errorf("commit chat: %w", err)
	}
	return chat, nil
}

func (r *ChatRepository) GetChatByID(ctx context.Context, id int64) (domain.Chat, error) {
	var chat domain.Chat
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, owner_id, type, created_at
		FROM chats WHERE id = $1`, id,
	).Scan(&chat.ID, &chat.Name, &chat.OwnerID, &chat.Type, &chat.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return domain.Chat{}, errors.ErrChatNotFound
	}
	if err != nil {
		return domain.Chat{}, fmt.Errorf("scan chat: %w", err)
	}
	return chat, nil
}

func (r *ChatRepository) GetMembers(ctx context.Context, chatID int64) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.email, u.fullname, u.created_at
		FROM users u
		JOIN chat_members m ON m.user_id = u.id
		WHERE m.chat_id = $1
		ORDER BY u.id`, chatID)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	var members []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Fullname, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, user)
	}
	return members, rows.Err()
}

func (r *ChatRepository) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Chat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.owner_id, c.type, c.created_at
		FROM chats c
		JOIN chat_members m ON m.chat_id = c.id
		WHERE m.user_id = $1
		ORDER BY c.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query chats: %w", err)
	}
	defer rows.Close()

	var chats []domain.Chat
	for rows.Next() {
		var chat domain.Chat
		if err := rows.Scan(&chat.ID, &chat.Name, &chat.OwnerID, &chat.Type, &chat.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}

func (r *ChatRepository) Rename(ctx context.Context, chatID int64, ownerID domain.UserID, name string) (domain.Chat, error) {
	var chat domain.Chat
	err := r.db.QueryRowContext(ctx, `
		UPDATE chats SET name = $1
		WHERE id = $2 AND owner_id = $3
		RETURNING id, name, owner_id, type, created_at`,
		name, chatID, ownerID,
	).Scan(&chat.ID, &chat.Name, &chat.OwnerID, &chat.Type, &chat.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return domain.Chat{}, r.ownershipFailure(ctx, chatID)
	}
	if err != nil {
		return domain.Chat{}, fmt.Errorf("rename chat: %w", err)
	}
	return chat, nil
}

// ownershipFailure distinguishes a missing chat from an ownership mismatch
// after an owner-gated statement touched no rows.
func (r *ChatRepository) ownershipFailure(ctx context.Context, chatID int64) error {
	if _, err := r.GetChatByID(ctx, chatID); err != nil {
		return err
	}
	return errors.ErrNotChatOwner
}

func (r *ChatRepository) Delete(ctx context.Context, chatID int64, ownerID domain.UserID) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM chats WHERE id = $1 AND owner_id = $2`, chatID, ownerID)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	if affected == 0 {
		return r.ownershipFailure(ctx, chatID)
	}
	return nil
}

// GetUnreadCount reads the per-member unread counter maintained on the
// membership row.
func (r *ChatRepository) GetUnreadCount(ctx context.Context, chatID int64, userID domain.UserID) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `
		SELECT unread_count FROM chat_members
		WHERE chat_id = $1 AND user_id = $2`, chatID, userID,
	).Scan(&count)
	if stderrors.Is(err, sql.ErrNoRows) {
		return 0, errors.ErrNotChatMember
	}
	if err != nil {
		return 0, fmt.Errorf("scan unread count: %w", err)
	}
	return count, nil
}

// SetUnreadCount overwrites the counter; marking a chat read sets it to
// zero. The message insert trigger increments it for the other members.
func (r *ChatRepository) SetUnreadCount(ctx context.Context, chatID int64, userID domain.UserID, count int32) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE chat_members SET unread_count = $1
		WHERE chat_id = $2 AND user_id = $3`, count, chatID, userID)
	if err != nil {
		return fmt.Errorf("set unread count: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set unread count: %w", err)
	}
	if affected == 0 {
		return errors.ErrNotChatMember
	}
	return nil
}

package services

import (
	"context"

	"ichat/domain"
	"ichat/domain/event"
	"ichat/repositories"
	"ichat/runtime"
)

type IChatService interface {
	Create(ctx context.Context, ownerID domain.UserID, memberIDs []domain.UserID, name string) (domain.Chat, error)
	Rename(ctx context.Context, chatID int64, ownerID domain.UserID, name string) (domain.Chat, error)
	Drop(ctx context.Context, chatID int64, ownerID domain.UserID) error
	List(ctx context.Context, userID domain.UserID) ([]domain.Chat, error)
	Members(ctx context.Context, chatID int64) ([]domain.User, error)
	MarkRead(ctx context.Context, chatID int64, userID domain.UserID) error
	UnreadCount(ctx context.Context, chatID int64, userID domain.UserID) (int32, error)
}

// ChatService mutates chats and, when direct publish is enabled, fans the
// matching lifecycle event out immediately instead of waiting for the
// database trigger round trip. The write and the publish are not
// transactionally linked: a rolled-back write may still have published,
// and a committed write publishes nothing when the process dies in
// between. Deployments relying on the trigger path disable direct
// publish to avoid duplicate delivery.
type ChatService struct {
	chats         repositories.IChatRepository
	bus           *runtime.Bus
	directPublish bool
}

func NewChatService(chats repositories.IChatRepository, bus *runtime.Bus, directPublish bool) IChatService {
	return &ChatService{chats: chats, bus: bus, directPublish: directPublish}
}

func (s *ChatService) Create(ctx context.Context, ownerID domain.UserID, memberIDs []domain.UserID, name string) (domain.Chat, error) {
	chat, err := s.chats.Create(ctx, ownerID, memberIDs, name)
	if err != nil {
		return domain.Chat{}, err
	}
	if s.directPublish {
		s.bus.Publish(event.ChatCreated{Chat: chat})
	}
	return chat, nil
}

func (s *ChatService) Rename(ctx context.Context, chatID int64, ownerID domain.UserID, name string) (domain.Chat, error) {
	chat, err := s.chats.Rename(ctx, chatID, ownerID, name)
	if err != nil {
		return domain.Chat{}, err
	}
	if s.directPublish {
		s.bus.Publish(event.ChatNameChanged{Chat: chat})
	}
	return chat, nil
}

func (s *ChatService) Drop(ctx context.Context, chatID int64, ownerID domain.UserID) error {
	// Snapshot before the delete; the event carries the last known state.
	chat, err := s.chats.GetChatByID(ctx, chatID)
	if err != nil {
		return err
	}
	if err := s.chats.Delete(ctx, chatID, ownerID); err != nil {
		return err
	}
	if s.directPublish {
		s.bus.Publish(event.ChatDeleted{Chat: chat})
	}
	return nil
}

func (s *ChatService) List(ctx context.Context, userID domain.UserID) ([]domain.Chat, error) {
	return s.chats.ListByUser(ctx, userID)
}

func (s *ChatService) Members(ctx context.Context, chatID int64) ([]domain.User, error) {
	return s.chats.GetMembers(ctx, chatID)
}

// MarkRead zeroes the caller's unread counter for the chat. No event is
// published; read state is private to the member.
func (s *ChatService) MarkRead(ctx context.Context, chatID int64, userID domain.UserID) error {
	return s.chats.SetUnreadCount(ctx, chatID, userID, 0)
}

func (s *ChatService) UnreadCount(ctx context.Context, chatID int64, userID domain.UserID) (int32, error) {
	return s.chats.GetUnreadCount(ctx, chatID, userID)
}

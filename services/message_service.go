package services

import (
	"context"

	"ichat/domain"
	"ichat/domain/event"
	"ichat/errors"
	"ichat/repositories"
	"ichat/runtime"
)

type IMessageService interface {
	Send(ctx context.Context, chatID int64, userID domain.UserID, content string) (domain.Message, error)
	List(ctx context.Context, chatID int64, userID domain.UserID, cursorID *int64) ([]domain.Message, error)
}

const messagePageSize = 50

type MessageService struct {
	messages      repositories.IMessageRepository
	chats         repositories.IChatRepository
	bus           *runtime.Bus
	directPublish bool
}

func NewMessageService(messages repositories.IMessageRepository, chats repositories.IChatRepository,
	bus *runtime.Bus, directPublish bool) IMessageService {
	return &MessageService{messages: messages, chats: chats, bus: bus, directPublish: directPublish}
}

func (s *MessageService) Send(ctx context.Context, chatID int64, userID domain.UserID, content string) (domain.Message, error) {
	if err := s.requireMember(ctx, chatID, userID); err != nil {
		return domain.Message{}, err
	}

	msg, err := s.messages.Create(ctx, chatID, userID, domain.MessageText, content)
	if err != nil {
		return domain.Message{}, err
	}
	if s.directPublish {
		s.bus.Publish(event.NewMessage{Message: msg})
	}
	return msg, nil
}

func (s *MessageService) List(ctx context.Context, chatID int64, userID domain.UserID, cursorID *int64) ([]domain.Message, error) {
	if err := s.requireMember(ctx, chatID, userID); err != nil {
		return nil, err
	}
	return s.messages.List(ctx, chatID, cursorID, messagePageSize)
}

func (s *MessageService) requireMember(ctx context.Context, chatID int64, userID domain.UserID) error {
	members, err := s.chats.GetMembers(ctx, chatID)
	if err != nil {
		return err
	}
	for _, member := range members {
		if member.ID == userID {
			return nil
		}
	}
	return errors.ErrNotChatMember
}

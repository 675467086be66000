package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ichat/domain"
	"ichat/domain/event"
	"ichat/errors"
	"ichat/mocks"
	"ichat/runtime"
)

func TestMessageService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := []domain.User{{ID: 2}, {ID: 3}}
	msg := domain.Message{ID: 1, ChatID: 7, UserID: 2, Type: domain.MessageText, Content: "hello"}

	t.Run("member sends and the event is published", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		chats := mocks.NewMockIChatRepository(ctrl)
		messages := mocks.NewMockIMessageRepository(ctrl)
		chats.EXPECT().GetMembers(gomock.Any(), int64(7)).Return(members, nil)
		messages.EXPECT().
			Create(gomock.Any(), int64(7), int64(2), domain.MessageText, "hello").
			Return(msg, nil)

		svc := NewMessageService(messages, chats, bus, true)

		got, err := svc.Send(context.Background(), 7, 2, "hello")
		req.NoError(err)
		req.Equal(msg, got)
		req.Equal(event.NewMessage{Message: msg}, nextEvent(t, cursor))
	})

	t.Run("non-member is rejected before any write", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()

		chats := mocks.NewMockIChatRepository(ctrl)
		messages := mocks.NewMockIMessageRepository(ctrl)
		chats.EXPECT().GetMembers(gomock.Any(), int64(7)).Return(members, nil)
		messages.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Times(0)

		svc := NewMessageService(messages, chats, bus, true)

		_, err := svc.Send(context.Background(), 7, 99, "intruder")
		req.ErrorIs(err, errors.ErrNotChatMember)
	})

	t.Run("trigger-driven deployments publish nothing", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		chats := mocks.NewMockIChatRepository(ctrl)
		messages := mocks.NewMockIMessageRepository(ctrl)
		chats.EXPECT().GetMembers(gomock.Any(), int64(7)).Return(members, nil)
		messages.EXPECT().
			Create(gomock.Any(), int64(7), int64(2), domain.MessageText, "hello").
			Return(msg, nil)

		svc := NewMessageService(messages, chats, bus, false)

		_, err := svc.Send(context.Background(), 7, 2, "hello")
		req.NoError(err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err = cursor.Next(ctx)
		req.ErrorIs(err, context.DeadlineExceeded)
	})
}

func TestMessageService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	members := []domain.User{{ID: 2}}

	t.Run("member pages backwards from the cursor", func(t *testing.T) {
		req := require.New(t)
		chats := mocks.NewMockIChatRepository(ctrl)
		messages := mocks.NewMockIMessageRepository(ctrl)

		cursorID := int64(100)
		page := []domain.Message{{ID: 99, ChatID: 7}, {ID: 98, ChatID: 7}}
		chats.EXPECT().GetMembers(gomock.Any(), int64(7)).Return(members, nil)
		messages.EXPECT().
			List(gomock.Any(), int64(7), &cursorID, messagePageSize).
			Return(page, nil)

		svc := NewMessageService(messages, chats, runtime.NewBus(runtime.DefaultCapacity), false)

		got, err := svc.List(context.Background(), 7, 2, &cursorID)
		req.NoError(err)
		req.Equal(page, got)
	})

	t.Run("non-member cannot read history", func(t *testing.T) {
		req := require.New(t)
		chats := mocks.NewMockIChatRepository(ctrl)
		messages := mocks.NewMockIMessageRepository(ctrl)

		chats.EXPECT().GetMembers(gomock.Any(), int64(7)).Return(members, nil)

		svc := NewMessageService(messages, chats, runtime.NewBus(runtime.DefaultCapacity), false)

		_, err := svc.List(context.Background(), 7, 99, nil)
		req.ErrorIs(err, errors.ErrNotChatMember)
	})
}

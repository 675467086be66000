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

func TestChatService_DirectPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chat := domain.Chat{ID: 7, Name: "general", OwnerID: 2, Type: domain.ChatGroup}

	t.Run("create publishes the lifecycle event", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		chats := mocks.NewMockIChatRepository(ctrl)
		chats.EXPECT().
			Create(gomock.Any(), int64(2), []domain.UserID{2, 3, 4}, "general").
			Return(chat, nil)

		svc := NewChatService(chats, bus, true)

		created, err := svc.Create(context.Background(), 2, []domain.UserID{2, 3, 4}, "general")
		req.NoError(err)
		req.Equal(chat, created)
		req.Equal(event.ChatCreated{Chat: chat}, nextEvent(t, cursor))
	})

	t.Run("rename publishes the new name", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		renamed := chat
		renamed.Name = "random"
		chats := mocks.NewMockIChatRepository(ctrl)
		chats.EXPECT().
			Rename(gomock.Any(), int64(7), int64(2), "random").
			Return(renamed, nil)

		svc := NewChatService(chats, bus, true)

		got, err := svc.Rename(context.Background(), 7, 2, "random")
		req.NoError(err)
		req.Equal(renamed, got)
		req.Equal(event.ChatNameChanged{Chat: renamed}, nextEvent(t, cursor))
	})

	t.Run("drop publishes the last known state", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		chats := mocks.NewMockIChatRepository(ctrl)
		chats.EXPECT().GetChatByID(gomock.Any(), int64(7)).Return(chat, nil)
		chats.EXPECT().Delete(gomock.Any(), int64(7), int64(2)).Return(nil)

		svc := NewChatService(chats, bus, true)

		req.NoError(svc.Drop(context.Background(), 7, 2))
		req.Equal(event.ChatDeleted{Chat: chat}, nextEvent(t, cursor))
	})

	t.Run("failed rename publishes nothing", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		chats := mocks.NewMockIChatRepository(ctrl)
		chats.EXPECT().
			Rename(gomock.Any(), int64(7), int64(9), "stolen").
			Return(domain.Chat{}, errors.ErrNotChatOwner)

		svc := NewChatService(chats, bus, true)

		_, err := svc.Rename(context.Background(), 7, 9, "stolen")
		req.ErrorIs(err, errors.ErrNotChatOwner)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err = cursor.Next(ctx)
		req.ErrorIs(err, context.DeadlineExceeded)
	})

	t.Run("marking read publishes nothing and zeroes the counter", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		chats := mocks.NewMockIChatRepository(ctrl)
		chats.EXPECT().SetUnreadCount(gomock.Any(), int64(7), int64(2), int32(0)).Return(nil)

		svc := NewChatService(chats, bus, true)

		req.NoError(svc.MarkRead(context.Background(), 7, 2))

		// Read state is private to the member; no lifecycle event goes out.
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := cursor.Next(ctx)
		req.ErrorIs(err, context.DeadlineExceeded)
	})

	t.Run("trigger-driven deployments stay silent", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()
		cursor := bus.Subscribe()
		defer cursor.Close()

		chats := mocks.NewMockIChatRepository(ctrl)
		chats.EXPECT().
			Create(gomock.Any(), int64(2), []domain.UserID{2, 3}, "quiet").
			Return(chat, nil)

		svc := NewChatService(chats, bus, false)

		_, err := svc.Create(context.Background(), 2, []domain.UserID{2, 3}, "quiet")
		req.NoError(err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err = cursor.Next(ctx)
		req.ErrorIs(err, context.DeadlineExceeded)
	})
}

func TestChatService_UnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the member's counter", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()

		chats := mocks.NewMockIChatRepository(ctrl)
		chats.EXPECT().GetUnreadCount(gomock.Any(), int64(7), int64(3)).Return(int32(5), nil)

		svc := NewChatService(chats, bus, true)

		count, err := svc.UnreadCount(context.Background(), 7, 3)
		req.NoError(err)
		req.Equal(int32(5), count)
	})

	t.Run("non-members have no counter", func(t *testing.T) {
		req := require.New(t)
		bus := runtime.NewBus(runtime.DefaultCapacity)
		defer bus.Close()

		chats := mocks.NewMockIChatRepository(ctrl)
		chats.EXPECT().GetUnreadCount(gomock.Any(), int64(7), int64(9)).
			Return(int32(0), errors.ErrNotChatMember)

		svc := NewChatService(chats, bus, true)

		_, err := svc.UnreadCount(context.Background(), 7, 9)
		req.ErrorIs(err, errors.ErrNotChatMember)
	})
}

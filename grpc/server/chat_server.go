package server

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"ichat/auth"
	"ichat/domain"
	"ichat/domain/event"
	"ichat/errors"
	pb "ichat/proto/chat"
	"ichat/repositories"
	"ichat/runtime"
	"ichat/services"
	"ichat/subscription"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	log            *slog.Logger
	bus            *runtime.Bus
	chatService    services.IChatService
	messageService services.IMessageService
	chats          repositories.IChatRepository
}

func NewChatServer(log *slog.Logger, bus *runtime.Bus, chatService services.IChatService,
	messageService services.IMessageService, chats repositories.IChatRepository) *ChatServer {
	return &ChatServer{
		log:            log,
		bus:            bus,
		chatService:    chatService,
		messageService: messageService,
		chats:          chats,
	}
}

// identity resolves the caller injected by the unary interceptor. Unary
// requests may arrive anonymous; operations needing an identity reject
// them here rather than at connection time.
func identity(ctx context.Context) (domain.UserID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.MapToGRPCError(errors.ErrIdentityRequired)
	}
	return userID, nil
}

func (s *ChatServer) CreateChat(ctx context.Context, in *pb.CreateChatRequest) (*pb.ChatResponse, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	chat, err := s.chatService.Create(ctx, userID, in.GetMemberIds(), in.GetName())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ChatResponse{Chat: toChat(chat)}, nil
}

func (s *ChatServer) RenameChat(ctx context.Context, in *pb.RenameChatRequest) (*pb.ChatResponse, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	chat, err := s.chatService.Rename(ctx, in.GetChatId(), userID, in.GetName())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ChatResponse{Chat: toChat(chat)}, nil
}

func (s *ChatServer) DropChat(ctx context.Context, in *pb.DropChatRequest) (*pb.DropChatResponse, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.chatService.Drop(ctx, in.GetChatId(), userID); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.DropChatResponse{Dropped: true}, nil
}

func (s *ChatServer) ListChats(ctx context.Context, _ *pb.ListChatsRequest) (*pb.ListChatsResponse, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	chats, err := s.chatService.List(ctx, userID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	out := make([]*pb.Chat, 0, len(chats))
	for _, chat := range chats {
		item := toChat(chat)
		// Unread counters are per caller, resolved on top of the chat row.
		count, err := s.chatService.UnreadCount(ctx, chat.ID, userID)
		if err != nil {
			return nil, errors.MapToGRPCError(err)
		}
		item.UnreadCount = count
		out = append(out, item)
	}
	return &pb.ListChatsResponse{Chats: out}, nil
}

func (s *ChatServer) MarkChatRead(ctx context.Context, in *pb.MarkChatReadRequest) (*pb.MarkChatReadResponse, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.chatService.MarkRead(ctx, in.GetChatId(), userID); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MarkChatReadResponse{Marked: true}, nil
}

func (s *ChatServer) SendMessage(ctx context.Context, in *pb.SendMessageRequest) (*pb.MessageResponse, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	msg, err := s.messageService.Send(ctx, in.GetChatId(), userID, in.GetContent())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MessageResponse{Message: toMessage(msg)}, nil
}

func (s *ChatServer) ListMessages(ctx context.Context, in *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	userID, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	var cursor *int64
	if in.CursorId != nil {
		cursor = lo.ToPtr(in.GetCursorId())
	}
	messages, err := s.messageService.List(ctx, in.GetChatId(), userID, cursor)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListMessagesResponse{
		Messages: lo.Map(messages, func(msg domain.Message, _ int) *pb.Message { return toMessage(msg) }),
	}, nil
}

// SubscribeMessages streams every message the caller is allowed to see,
// membership being re-checked per event at delivery time.
func (s *ChatServer) SubscribeMessages(_ *pb.SubscribeMessagesRequest, stream pb.ChatService_SubscribeMessagesServer) error {
	userID, ok := auth.UserIDFromContext(stream.Context())
	if !ok {
		// The stream interceptor already hard-fails anonymous streams;
		// this only guards against misconfiguration.
		return errors.MapToGRPCError(errors.ErrIdentityRequired)
	}
	filter := subscription.NewAllMessages(s.log, userID, s.chats)
	return s.pump(stream.Context(), filter, stream.Send)
}

// SubscribeChatMessages streams one chat's messages without a membership
// re-check; opening the stream implies the caller authorized itself via a
// prior query.
func (s *ChatServer) SubscribeChatMessages(in *pb.SubscribeChatMessagesRequest, stream pb.ChatService_SubscribeChatMessagesServer) error {
	return s.pump(stream.Context(), subscription.NewChatMessages(in.GetChatId()), stream.Send)
}

// SubscribeChats streams chat lifecycle changes to any authenticated
// subscriber, unfiltered.
func (s *ChatServer) SubscribeChats(_ *pb.SubscribeChatsRequest, stream pb.ChatService_SubscribeChatsServer) error {
	return s.pump(stream.Context(), subscription.NewChatLifecycle(), stream.Send)
}

func (s *ChatServer) pump(ctx context.Context, filter subscription.Filter,
	send func(*pb.ChatStreamEvent) error) error {
	for evt := range subscription.Open(ctx, s.log, s.bus, filter) {
		out, ok := toChatStreamEvent(evt)
		if !ok {
			continue
		}
		if err := send(out); err != nil {
			s.log.Warn("Failed to push event to stream", "error", err)
			return err
		}
	}
	return nil
}

func toChatStreamEvent(e event.DomainEvent) (*pb.ChatStreamEvent, bool) {
	switch evt := e.(type) {
	case event.ChatCreated:
		return lifecycleEvent(pb.ChatLifecycleEvent_KIND_CREATED, evt.Chat), true
	case event.ChatOwnerChanged:
		return lifecycleEvent(pb.ChatLifecycleEvent_KIND_OWNER_CHANGED, evt.Chat), true
	case event.ChatNameChanged:
		return lifecycleEvent(pb.ChatLifecycleEvent_KIND_NAME_CHANGED, evt.Chat), true
	case event.ChatDeleted:
		return lifecycleEvent(pb.ChatLifecycleEvent_KIND_DELETED, evt.Chat), true
	case event.NewMessage:
		return &pb.ChatStreamEvent{
			Event: &pb.ChatStreamEvent_Message{
				Message: &pb.NewMessageEvent{Message: toMessage(evt.Message)},
			},
		}, true
	default:
		return nil, false
	}
}

func lifecycleEvent(kind pb.ChatLifecycleEvent_Kind, chat domain.Chat) *pb.ChatStreamEvent {
	return &pb.ChatStreamEvent{
		Event: &pb.ChatStreamEvent_Chat{
			Chat: &pb.ChatLifecycleEvent{Kind: kind, Chat: toChat(chat)},
		},
	}
}

func toChat(chat domain.Chat) *pb.Chat {
	return &pb.Chat{
		Id:        chat.ID,
		Name:      chat.Name,
		OwnerId:   chat.OwnerID,
		Type:      string(chat.Type),
		CreatedAt: timestamppb.New(chat.CreatedAt),
	}
}

func toMessage(msg domain.Message) *pb.Message {
	return &pb.Message{
		Id:        msg.ID,
		ChatId:    msg.ChatID,
		UserId:    msg.UserID,
		Type:      string(msg.Type),
		Content:   msg.Content,
		CreatedAt: timestamppb.New(msg.CreatedAt),
	}
}

package subscription

import (
	"context"
	stderrors "errors"
	"log/slog"

	"ichat/domain"
	"ichat/domain/event"
	"ichat/errors"
	"ichat/repositories"
)

// AllMessages yields NewMessage events for chats the subscriber currently
// belongs to. Membership is resolved against the repository at delivery
// time, not subscribe time: a member added after a message was published
// may see it, a removed one may not. That eventual consistency is
// accepted, matching the trigger-driven change feed.
type AllMessages struct {
	log    *slog.Logger
	userID domain.UserID
	chats  repositories.IChatRepository
}

func NewAllMessages(log *slog.Logger, userID domain.UserID, chats repositories.IChatRepository) *AllMessages {
	return &AllMessages{log: log, userID: userID, chats: chats}
}

func (f *AllMessages) Apply(ctx context.Context, e event.DomainEvent) (Decision, error) {
	msg, ok := e.(event.NewMessage)
	if !ok {
		return Drop, nil
	}

	chat, err := f.chats.GetChatByID(ctx, msg.Message.ChatID)
	if err != nil {
		return f.dropOrEnd(err)
	}
	members, err := f.chats.GetMembers(ctx, chat.ID)
	if err != nil {
		return f.dropOrEnd(err)
	}

	for _, member := range members {
		if member.ID == f.userID {
			return Yield, nil
		}
	}
	return Drop, nil
}

// dropOrEnd converts a repository failure into a silent drop, unless the
// failure says the subscriber itself no longer resolves, which ends the
// stream.
func (f *AllMessages) dropOrEnd(err error) (Decision, error) {
	if stderrors.Is(err, errors.ErrUserNotFound) {
		return Drop, err
	}
	f.log.Debug("Authorization lookup failed, dropping event", "error", err)
	return Drop, nil
}

// ChatMessages yields NewMessage events for one chat. No membership
// re-check happens here: the caller authorized access when it opened the
// stream.
type ChatMessages struct {
	chatID int64
}

func NewChatMessages(chatID int64) *ChatMessages {
	return &ChatMessages{chatID: chatID}
}

func (f *ChatMessages) Apply(_ context.Context, e event.DomainEvent) (Decision, error) {
	if msg, ok := e.(event.NewMessage); ok && msg.Message.ChatID == f.chatID {
		return Yield, nil
	}
	return Drop, nil
}

// ChatLifecycle yields every chat metadata change to every subscriber,
// regardless of identity.
type ChatLifecycle struct{}

func NewChatLifecycle() *ChatLifecycle {
	return &ChatLifecycle{}
}

func (f *ChatLifecycle) Apply(_ context.Context, e event.DomainEvent) (Decision, error) {
	switch e.(type) {
	case event.ChatCreated, event.ChatOwnerChanged, event.ChatNameChanged, event.ChatDeleted:
		return Yield, nil
	default:
		return Drop, nil
	}
}

// Pairing yields QR events for one device UUID. Confirmed and Cancelled
// are terminal: the stream ends after either, no matter what is published
// for the same device afterwards. Scanned may repeat.
type Pairing struct {
	deviceUUID string
}

func NewPairing(deviceUUID string) *Pairing {
	return &Pairing{deviceUUID: deviceUUID}
}

func (f *Pairing) Apply(_ context.Context, e event.DomainEvent) (Decision, error) {
	switch qr := e.(type) {
	case event.QRScanned:
		if qr.DeviceUUID == f.deviceUUID {
			return Yield, nil
		}
	case event.QRConfirmed:
		if qr.DeviceUUID == f.deviceUUID {
			return YieldAndEnd, nil
		}
	case event.QRCancelled:
		if qr.DeviceUUID == f.deviceUUID {
			return YieldAndEnd, nil
		}
	}
	return Drop, nil
}

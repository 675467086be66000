package event

import (
	"encoding/json"
	"fmt"

	"ichat/domain"
	"ichat/errors"
)

// Notification channels raised by the database triggers.
const (
	ChanChatChange = "chat_change"
	ChanNewMessage = "new_message"
)

// chatChange is the trigger payload for the chat_change channel.
// INSERT carries new, DELETE carries old, UPDATE carries both.
type chatChange struct {
	Op  string       `json:"op"`
	Old *domain.Chat `json:"old"`
	New *domain.Chat `json:"new"`
}

// Decode converts a raw change notification into a typed domain event.
// Malformed or ambiguous payloads are errors; the listener drops them.
func Decode(channel, payload string) (DomainEvent, error) {
	switch channel {
	case ChanChatChange:
		return decodeChatChange(payload)
	case ChanNewMessage:
		var msg domain.Message
		if err := json.Unmarshal([]byte(payload), &msg); err != nil {
			return nil, fmt.Errorf("decode message payload: %w", err)
		}
		return NewMessage{Message: msg}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownChannel, channel)
	}
}

func decodeChatChange(payload string) (DomainEvent, error) {
	var change chatChange
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		return nil, fmt.Errorf("decode chat payload: %w", err)
	}

	switch change.Op {
	case "INSERT":
		if change.New == nil {
			return nil, fmt.Errorf("%w: INSERT without new row", errors.ErrInvalidChange)
		}
		return ChatCreated{Chat: *change.New}, nil
	case "UPDATE":
		if change.Old == nil || change.New == nil {
			return nil, fmt.Errorf("%w: UPDATE without both rows", errors.ErrInvalidChange)
		}
		// Re-classify by the field that actually changed. An UPDATE that
		// changed neither owner nor name is rejected, not misfiled.
		if change.Old.OwnerID != change.New.OwnerID {
			return ChatOwnerChanged{Chat: *change.New}, nil
		}
		if change.Old.Name != change.New.Name {
			return ChatNameChanged{Chat: *change.New}, nil
		}
		return nil, fmt.Errorf("%w: UPDATE changed neither owner nor name", errors.ErrInvalidChange)
	case "DELETE":
		if change.Old == nil {
			return nil, fmt.Errorf("%w: DELETE without old row", errors.ErrInvalidChange)
		}
		return ChatDeleted{Chat: *change.Old}, nil
	default:
		return nil, fmt.Errorf("%w: op %q", errors.ErrInvalidChange, change.Op)
	}
}

package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ichat/errors"
)

func TestDecode_NewMessage(t *testing.T) {
	req := require.New(t)

	payload := `{"id":42,"chat_id":7,"user_id":3,"type":"text","content":"hello"}`
	evt, err := Decode(ChanNewMessage, payload)

	req.NoError(err)
	msg, ok := evt.(NewMessage)
	req.True(ok)
	req.Equal(int64(42), msg.Message.ID)
	req.Equal(int64(7), msg.Message.ChatID)
	req.Equal("hello", msg.Message.Content)
}

func TestDecode_ChatChange(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    any
		wantErr error
	}{
		{
			name:    "INSERT becomes ChatCreated",
			payload: `{"op":"INSERT","new":{"id":1,"name":"general","owner_id":2,"type":"group"}}`,
			want:    ChatCreated{},
		},
		{
			name:    "UPDATE with owner diff becomes ChatOwnerChanged",
			payload: `{"op":"UPDATE","old":{"id":1,"name":"general","owner_id":2},"new":{"id":1,"name":"general","owner_id":5}}`,
			want:    ChatOwnerChanged{},
		},
		{
			name:    "UPDATE with name diff becomes ChatNameChanged",
			payload: `{"op":"UPDATE","old":{"id":1,"name":"general","owner_id":2},"new":{"id":1,"name":"random","owner_id":2}}`,
			want:    ChatNameChanged{},
		},
		{
			name:    "UPDATE changing both classifies as owner change",
			payload: `{"op":"UPDATE","old":{"id":1,"name":"general","owner_id":2},"new":{"id":1,"name":"random","owner_id":5}}`,
			want:    ChatOwnerChanged{},
		},
		{
			name:    "DELETE becomes ChatDeleted carrying the old row",
			payload: `{"op":"DELETE","old":{"id":1,"name":"general","owner_id":2}}`,
			want:    ChatDeleted{},
		},
		{
			name:    "UPDATE changing neither field is rejected",
			payload: `{"op":"UPDATE","old":{"id":1,"name":"general","owner_id":2},"new":{"id":1,"name":"general","owner_id":2}}`,
			wantErr: errors.ErrInvalidChange,
		},
		{
			name:    "INSERT without new row is rejected",
			payload: `{"op":"INSERT"}`,
			wantErr: errors.ErrInvalidChange,
		},
		{
			name:    "UPDATE missing old row is rejected",
			payload: `{"op":"UPDATE","new":{"id":1,"name":"general","owner_id":2}}`,
			wantErr: errors.ErrInvalidChange,
		},
		{
			name:    "DELETE without old row is rejected",
			payload: `{"op":"DELETE"}`,
			wantErr: errors.ErrInvalidChange,
		},
		{
			name:    "unknown op is rejected",
			payload: `{"op":"TRUNCATE"}`,
			wantErr: errors.ErrInvalidChange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			evt, err := Decode(ChanChatChange, tt.payload)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.IsType(tt.want, evt)
		})
	}
}

func TestDecode_DeletePreservesLastKnownState(t *testing.T) {
	req := require.New(t)

	payload := `{"op":"DELETE","old":{"id":9,"name":"doomed","owner_id":4,"type":"private"}}`
	evt, err := Decode(ChanChatChange, payload)

	req.NoError(err)
	deleted, ok := evt.(ChatDeleted)
	req.True(ok)
	req.Equal(int64(9), deleted.Chat.ID)
	req.Equal("doomed", deleted.Chat.Name)
	req.Equal(int64(4), deleted.Chat.OwnerID)
}

func TestDecode_UnknownChannel(t *testing.T) {
	req := require.New(t)

	_, err := Decode("user_change", `{}`)
	req.ErrorIs(err, errors.ErrUnknownChannel)
}

func TestDecode_MalformedPayload(t *testing.T) {
	req := require.New(t)

	_, err := Decode(ChanChatChange, `not json at all`)
	req.Error(err)

	_, err = Decode(ChanNewMessage, `{"id":`)
	req.Error(err)
}

package domain

import "time"

type UserID = int64

type ChatType string

const (
	ChatPrivate ChatType = "private"
	ChatGroup   ChatType = "group"
)

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageVideo MessageType = "video"
	MessageAudio MessageType = "audio"
	MessageFile  MessageType = "file"
)

type User struct {
	ID           UserID    `json:"id"`
	Fullname     string    `json:"fullname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Chat rows are decoded straight from the Postgres change feed payload,
// so the JSON tags must match the column names.
type Chat struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   UserID    `json:"owner_id"`
	Type      ChatType  `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID        int64       `json:"id"`
	ChatID    int64       `json:"chat_id"`
	UserID    UserID      `json:"user_id"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

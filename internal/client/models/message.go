package models

import "time"

type Message struct {
	ID         int64       `json:"id"`
	SenderID   int64       `json:"sender_id"`
	ReceiverID int64       `json:"receiver_id"`
	Content    string      `json:"content"`
	IsRead     bool        `json:"is_read"`
	CreatedAt  time.Time   `json:"created_at"`
	Sender     UserSummary `json:"sender"`
}

// Conversation is one row of the inbox: the peer, the latest message and how
// many of their messages are still unread.
type Conversation struct {
	User        UserSummary `json:"user"`
	LastMessage *Message    `json:"last_message,omitempty"`
	UnreadCount int         `json:"unread_count"`
}

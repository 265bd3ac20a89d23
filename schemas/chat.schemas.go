package schemas

import "time"

// ChatMessage struct is one stored direct message.
// MessageID is the durable addressing key; Created is the ordering key.
type ChatMessage struct {
	MessageID  string
	SenderID   string
	ReceiverID string
	Message    string
	Created    time.Time
}

// EditMessageSchema struct
type EditMessageSchema struct {
	SenderID   string `validate:"required"`
	ReceiverID string `validate:"required"`
	MessageID  string
	OldMessage string `validate:"required_without=MessageID"`
	NewMessage string `validate:"required,max=5000"`
}

// DeleteMessageSchema struct
type DeleteMessageSchema struct {
	SenderID   string `validate:"required"`
	ReceiverID string `validate:"required"`
	MessageID  string
	Message    string `validate:"required_without=MessageID"`
}

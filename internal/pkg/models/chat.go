package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// AdminReceiverID is the fixed counterparty of every provider conversation
const AdminReceiverID = "admin"

// ChatMessage is a single message in a provider/admin conversation
type ChatMessage struct {
	ID         string    `json:"id,omitempty"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Body       string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
	// Pending marks a locally appended message awaiting acknowledgement
	Pending bool `json:"-"`
}

// SendMessageRequest is the payload of a send call
type SendMessageRequest struct {
	SenderID   string `json:"senderId" validate:"required"`
	ReceiverID string `json:"receiverId" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

// MessageAck is the server acknowledgement of a sent message. The backend
// answers either with the stored message or with a plain status text; Message
// is only filled in for the former and Text for the latter.
type MessageAck struct {
	Success bool        `json:"success"`
	Message ChatMessage `json:"message"`
	Text    string      `json:"-"`
}

// UnmarshalJSON accepts a message object or a status string
func (a *MessageAck) UnmarshalJSON(data []byte) error {
	var raw struct {
		Success bool            `json:"success"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = MessageAck{Success: raw.Success}
	msg := bytes.TrimSpace(raw.Message)
	switch {
	case len(msg) == 0 || bytes.Equal(msg, []byte("null")):
	case msg[0] == '"':
		return json.Unmarshal(msg, &a.Text)
	default:
		var m ChatMessage
		if err := json.Unmarshal(msg, &m); err == nil {
			a.Message = m
		}
	}
	return nil
}

// PreviousChat is the raw history payload returned by the backend
type PreviousChat struct {
	HasConversation bool          `json:"hasConversation"`
	Messages        []ChatMessage `json:"messages"`
	ConversationID  string        `json:"conversationId,omitempty"`
}

// ConversationHandle is one screen visit's view of the conversation. It lives
// only in memory.
type ConversationHandle struct {
	ConversationID  string
	HasConversation bool
	Messages        []ChatMessage
}

// ChatHistory is the normalized history handed to screens.
// On failure Success is false, Error is set and Messages is empty.
type ChatHistory struct {
	Success         bool
	Error           string
	HasConversation bool
	Messages        []ChatMessage
	ConversationID  string
}

// ChatErrorKind classifies chat failures
type ChatErrorKind string

const (
	ChatErrorValidation   ChatErrorKind = "validation"
	ChatErrorTransport    ChatErrorKind = "transport"
	ChatErrorUnauthorized ChatErrorKind = "unauthorized"
)

// ChatError is the structured failure returned by chat operations
type ChatError struct {
	Kind    ChatErrorKind
	Message string
	Err     error
}

func (e *ChatError) Error() string {
	return e.Message
}

func (e *ChatError) Unwrap() error {
	return e.Err
}

// IsChatErrorKind reports whether err is a ChatError of the given kind
func IsChatErrorKind(err error, kind ChatErrorKind) bool {
	var chatErr *ChatError
	return errors.As(err, &chatErr) && chatErr.Kind == kind
}

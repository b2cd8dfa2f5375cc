package messages

import (
	"context"

	"github.com/piresc/tiffinhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_messages.go -package=mocks github.com/piresc/tiffinhub/services/messages MessageRepo,MessageUC

// MessageRepo stores one append-only conversation with the admin per user
type MessageRepo interface {
	// EnsureConversation returns the user's conversation id, creating it on first use
	EnsureConversation(ctx context.Context, userID string) (string, error)
	// GetConversationID returns an empty id when the user never wrote
	GetConversationID(ctx context.Context, userID string) (string, error)
	AppendMessage(ctx context.Context, userID string, msg *models.ChatMessage) error
	ListMessages(ctx context.Context, userID string) ([]models.ChatMessage, error)
}

// MessageUC is the dev backend's message logic
type MessageUC interface {
	SendMessage(ctx context.Context, userID string, req *models.SendMessageRequest) (*models.ChatMessage, error)
	PreviousChat(ctx context.Context, userID string) (*models.PreviousChat, error)
}

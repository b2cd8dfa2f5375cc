package chat

import (
	"context"

	"github.com/piresc/tiffinhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_chat.go -package=mocks github.com/piresc/tiffinhub/services/chat ChatGW,ChatUC

// ChatGW talks to the backend message endpoints
type ChatGW interface {
	SendMessage(ctx context.Context, req *models.SendMessageRequest) (*models.MessageAck, error)
	GetPreviousChat(ctx context.Context, serviceType models.ServiceType) (*models.PreviousChat, error)
}

// ChatUC is the message client used by screens. Neither call retries.
type ChatUC interface {
	// SendMessage sends body to the admin as the signed-in user
	SendMessage(ctx context.Context, body string) (*models.MessageAck, error)
	// GetPreviousChat never fails outright; check ChatHistory.Success
	GetPreviousChat(ctx context.Context) *models.ChatHistory
}

package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/tiffinhub/internal/pkg/constants"
	httpclient "github.com/piresc/tiffinhub/internal/pkg/http"
	"github.com/piresc/tiffinhub/internal/pkg/models"
)

// ChatGW implements chat.ChatGW over the shared authenticated client
type ChatGW struct {
	client *httpclient.Client
}

// NewChatGW creates the message gateway
func NewChatGW(client *httpclient.Client) *ChatGW {
	return &ChatGW{client: client}
}

// SendMessage posts a message and returns the server acknowledgement
func (g *ChatGW) SendMessage(ctx context.Context, req *models.SendMessageRequest) (*models.MessageAck, error) {
	var ack models.MessageAck
	if err := g.client.PostJSON(ctx, constants.PathSendMessage, req, &ack); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &ack, nil
}

// GetPreviousChat fetches the whole conversation from the endpoint matching the service type
func (g *ChatGW) GetPreviousChat(ctx context.Context, serviceType models.ServiceType) (*models.PreviousChat, error) {
	var history models.PreviousChat
	if err := g.client.GetJSON(ctx, previousChatPath(serviceType), &history); err != nil {
		return nil, fmt.Errorf("failed to get previous chat: %w", err)
	}
	return &history, nil
}

func previousChatPath(serviceType models.ServiceType) string {
	if serviceType == models.ServiceTypeHostelOwner {
		return constants.PathHostelOwnerPreviousChat
	}
	return constants.PathTiffinProviderPreviousChat
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/tiffinhub/internal/pkg/constants"
	"github.com/piresc/tiffinhub/internal/pkg/database"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/piresc/tiffinhub/services/messages"
)

type messageRepo struct {
	redisClient *database.RedisClient
}

// NewMessageRepository creates a Redis backed message repository
func NewMessageRepository(redisClient *database.RedisClient) messages.MessageRepo {
	return &messageRepo{
		redisClient: redisClient,
	}
}

// EnsureConversation returns the existing conversation id or creates one.
// Concurrent first sends agree on a single id.
func (r *messageRepo) EnsureConversation(ctx context.Context, userID string) (string, error) {
	key := fmt.Sprintf(constants.KeyConversationID, userID)

	if _, err := r.redisClient.SetNX(ctx, key, uuid.New().String(), 0); err != nil {
		return "", fmt.Errorf("failed to create conversation: %w", err)
	}

	id, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to get conversation id: %w", err)
	}
	return id, nil
}

// GetConversationID returns the conversation id, or empty if none exists
func (r *messageRepo) GetConversationID(ctx context.Context, userID string) (string, error) {
	id, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyConversationID, userID))
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get conversation id: %w", err)
	}
	return id, nil
}

// AppendMessage adds msg at the end of the user's conversation
func (r *messageRepo) AppendMessage(ctx context.Context, userID string, msg *models.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := r.redisClient.RPush(ctx, fmt.Sprintf(constants.KeyConversationMessages, userID), data); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// ListMessages returns the whole conversation, oldest first
func (r *messageRepo) ListMessages(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	values, err := r.redisClient.LRange(ctx, fmt.Sprintf(constants.KeyConversationMessages, userID), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	result := make([]models.ChatMessage, 0, len(values))
	for _, v := range values {
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(v), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		result = append(result, msg)
	}
	return result, nil
}

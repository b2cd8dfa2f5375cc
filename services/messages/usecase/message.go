package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/piresc/tiffinhub/services/messages"
)

var (
	// ErrSenderMismatch is returned when the sender is not the authenticated user
	ErrSenderMismatch = errors.New("sender does not match authenticated user")
	// ErrUnknownReceiver is returned for any receiver other than the admin
	ErrUnknownReceiver = errors.New("messages can only be sent to admin")
)

// MessageUC implements messages.MessageUC
type MessageUC struct {
	messageRepo messages.MessageRepo
	now         func() time.Time
}

// NewMessageUC creates the message usecase
func NewMessageUC(messageRepo messages.MessageRepo) *MessageUC {
	return &MessageUC{
		messageRepo: messageRepo,
		now:         time.Now,
	}
}

// SendMessage appends the message to the user's conversation with the admin
func (uc *MessageUC) SendMessage(ctx context.Context, userID string, req *models.SendMessageRequest) (*models.ChatMessage, error) {
	if req.SenderID != userID {
		return nil, ErrSenderMismatch
	}
	if req.ReceiverID != models.AdminReceiverID {
		return nil, ErrUnknownReceiver
	}

	conversationID, err := uc.messageRepo.EnsureConversation(ctx, userID)
	if err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ID:         uuid.New().String(),
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Body:       req.Message,
		CreatedAt:  uc.now().UTC(),
	}
	if err := uc.messageRepo.AppendMessage(ctx, userID, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	logger.Info("Message stored",
		logger.String("user_id", userID),
		logger.String("conversation_id", conversationID),
		logger.String("message_id", msg.ID))

	return msg, nil
}

// PreviousChat returns the whole conversation of the user with the admin
func (uc *MessageUC) PreviousChat(ctx context.Context, userID string) (*models.PreviousChat, error) {
	conversationID, err := uc.messageRepo.GetConversationID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conversationID == "" {
		return &models.PreviousChat{Messages: []models.ChatMessage{}}, nil
	}

	msgs, err := uc.messageRepo.ListMessages(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.PreviousChat{
		HasConversation: len(msgs) > 0,
		Messages:        msgs,
		ConversationID:  conversationID,
	}, nil
}

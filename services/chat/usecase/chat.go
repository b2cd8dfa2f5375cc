package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/piresc/tiffinhub/internal/pkg/constants"
	httpclient "github.com/piresc/tiffinhub/internal/pkg/http"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/piresc/tiffinhub/internal/pkg/session"
	"github.com/piresc/tiffinhub/services/chat"
)

var (
	// ErrEmptyMessage is returned, without any network call, for blank messages
	ErrEmptyMessage = errors.New("message cannot be empty")
	// ErrNotSignedIn is returned when no user is in the session
	ErrNotSignedIn = errors.New("not signed in")
)

// ValidateBody rejects blank messages locally
func ValidateBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return &models.ChatError{
			Kind:    models.ChatErrorValidation,
			Message: ErrEmptyMessage.Error(),
			Err:     ErrEmptyMessage,
		}
	}
	return nil
}

// ChatUC implements chat.ChatUC
type ChatUC struct {
	chatGW  chat.ChatGW
	session session.Store
}

// NewChatUC creates the message client
func NewChatUC(chatGW chat.ChatGW, store session.Store) *ChatUC {
	return &ChatUC{
		chatGW:  chatGW,
		session: store,
	}
}

// SendMessage sends body to the admin on behalf of the signed-in user
func (uc *ChatUC) SendMessage(ctx context.Context, body string) (*models.MessageAck, error) {
	if err := ValidateBody(body); err != nil {
		return nil, err
	}

	user := uc.session.User()
	if user == nil || user.ID == "" {
		return nil, &models.ChatError{
			Kind:    models.ChatErrorUnauthorized,
			Message: ErrNotSignedIn.Error(),
			Err:     ErrNotSignedIn,
		}
	}

	ack, err := uc.chatGW.SendMessage(ctx, &models.SendMessageRequest{
		SenderID:   user.ID,
		ReceiverID: models.AdminReceiverID,
		Message:    body,
	})
	if err != nil {
		logger.Warn("Failed to send message",
			logger.String("user_id", user.ID),
			logger.Err(err))
		return nil, toChatError(err, constants.DefaultSendFailureMessage)
	}

	return ack, nil
}

// GetPreviousChat loads the full conversation with the admin. Failures come
// back as an unsuccessful, empty history.
func (uc *ChatUC) GetPreviousChat(ctx context.Context) *models.ChatHistory {
	user := uc.session.User()
	if user == nil {
		return failedHistory(ErrNotSignedIn.Error())
	}

	history, err := uc.chatGW.GetPreviousChat(ctx, user.ServiceType)
	if err != nil {
		logger.Warn("Failed to load previous chat",
			logger.String("user_id", user.ID),
			logger.String("service_type", string(user.ServiceType)),
			logger.Err(err))
		return failedHistory(toChatError(err, constants.DefaultHistoryFailureMessage).Message)
	}

	messages := history.Messages
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	return &models.ChatHistory{
		Success:         true,
		HasConversation: history.HasConversation,
		Messages:        messages,
		ConversationID:  history.ConversationID,
	}
}

func failedHistory(msg string) *models.ChatHistory {
	return &models.ChatHistory{
		Success:  false,
		Error:    msg,
		Messages: []models.ChatMessage{},
	}
}

func toChatError(err error, fallback string) *models.ChatError {
	kind := models.ChatErrorTransport
	if httpclient.IsUnauthorized(err) {
		kind = models.ChatErrorUnauthorized
	}

	msg := httpclient.ServerMessage(err)
	if msg == "" {
		msg = fallback
	}

	return &models.ChatError{Kind: kind, Message: msg, Err: err}
}

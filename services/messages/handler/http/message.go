package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/piresc/tiffinhub/internal/pkg/middleware"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/piresc/tiffinhub/internal/utils"
	"github.com/piresc/tiffinhub/services/messages"
	"github.com/piresc/tiffinhub/services/messages/usecase"
)

// previousChatResponse is the history payload with the success flag
type previousChatResponse struct {
	Success bool `json:"success"`
	models.PreviousChat
}

// MessageHandler serves the provider/admin message endpoints
type MessageHandler struct {
	messageUC messages.MessageUC
	validate  *validator.Validate
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageUC messages.MessageUC) *MessageHandler {
	return &MessageHandler{
		messageUC: messageUC,
		validate:  validator.New(),
	}
}

// SendMessage handles POST /api/message/sendMessage
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for send message",
			logger.Err(err),
			logger.String("endpoint", "SendMessage"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, validationMessage(err))
	}
	if strings.TrimSpace(req.Message) == "" {
		return utils.BadRequestResponse(c, "Message cannot be empty")
	}

	userID := middleware.UserID(c)
	msg, err := h.messageUC.SendMessage(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrSenderMismatch) || errors.Is(err, usecase.ErrUnknownReceiver) {
			return utils.ForbiddenResponse(c, err.Error())
		}
		logger.Error("Failed to send message",
			logger.Err(err),
			logger.String("user_id", userID))
		return utils.InternalServerErrorResponse(c, "Failed to send message")
	}

	return c.JSON(http.StatusCreated, models.MessageAck{Success: true, Message: *msg})
}

// GetHostelOwnerPreviousChat handles GET /api/message/getHostelOwnerPreviousChat
func (h *MessageHandler) GetHostelOwnerPreviousChat(c echo.Context) error {
	if middleware.ServiceType(c) != models.ServiceTypeHostelOwner {
		return utils.ForbiddenResponse(c, "Only hostel owners can use this endpoint")
	}
	return h.previousChat(c)
}

// GetTiffinProviderPreviousChat handles GET /api/message/getTiffinProviderPreviousChat
func (h *MessageHandler) GetTiffinProviderPreviousChat(c echo.Context) error {
	if middleware.ServiceType(c) == models.ServiceTypeHostelOwner {
		return utils.ForbiddenResponse(c, "Hostel owners must use getHostelOwnerPreviousChat")
	}
	return h.previousChat(c)
}

func (h *MessageHandler) previousChat(c echo.Context) error {
	userID := middleware.UserID(c)
	history, err := h.messageUC.PreviousChat(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to load previous chat",
			logger.Err(err),
			logger.String("user_id", userID))
		return utils.InternalServerErrorResponse(c, "Failed to load conversation")
	}

	return c.JSON(http.StatusOK, previousChatResponse{Success: true, PreviousChat: *history})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("%s is %s", verrs[0].Field(), verrs[0].Tag())
	}
	return "Invalid request payload"
}

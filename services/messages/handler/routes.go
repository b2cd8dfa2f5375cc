package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tiffinhub/internal/pkg/constants"
	"github.com/piresc/tiffinhub/internal/pkg/middleware"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/piresc/tiffinhub/services/messages"
	httpHandler "github.com/piresc/tiffinhub/services/messages/handler/http"
)

// Handler wires the message endpoints
type Handler struct {
	messageHTTP *httpHandler.MessageHandler
	cfg         *models.Config
}

// NewHandler creates the message route handler
func NewHandler(messageUC messages.MessageUC, cfg *models.Config) *Handler {
	return &Handler{
		messageHTTP: httpHandler.NewMessageHandler(messageUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the message routes behind JWT authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	protected.POST(constants.PathSendMessage, h.messageHTTP.SendMessage)
	protected.GET(constants.PathHostelOwnerPreviousChat, h.messageHTTP.GetHostelOwnerPreviousChat)
	protected.GET(constants.PathTiffinProviderPreviousChat, h.messageHTTP.GetTiffinProviderPreviousChat)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/tiffinhub/internal/pkg/middleware"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/piresc/tiffinhub/services/messages/mocks"
	"github.com/piresc/tiffinhub/services/messages/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedContext(method, target, body string, userID string, serviceType models.ServiceType) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyServiceType, serviceType)
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSendMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMessageUC(ctrl)
	handler := NewMessageHandler(mockUC)

	c, rec := newAuthedContext(http.MethodPost, "/api/message/sendMessage",
		`{"senderId": "provider-1", "receiverId": "admin", "message": "hello"}`,
		"provider-1", models.ServiceTypeTiffinProvider)

	mockUC.EXPECT().
		SendMessage(gomock.Any(), "provider-1", &models.SendMessageRequest{
			SenderID:   "provider-1",
			ReceiverID: "admin",
			Message:    "hello",
		}).
		Return(&models.ChatMessage{ID: "m-1", SenderID: "provider-1", ReceiverID: "admin", Body: "hello"}, nil)

	err := handler.SendMessage(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var ack models.MessageAck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack.Success)
	assert.Equal(t, "m-1", ack.Message.ID)
	assert.Equal(t, "hello", ack.Message.Body)
}

func TestSendMessage_BadRequests(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr string
	}{
		{name: "malformed json", body: `{"senderId":`, expectedErr: "Invalid request payload"},
		{name: "missing message", body: `{"senderId": "provider-1", "receiverId": "admin"}`, expectedErr: "Message is required"},
		{name: "blank message", body: `{"senderId": "provider-1", "receiverId": "admin", "message": "   "}`, expectedErr: "Message cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := NewMessageHandler(mocks.NewMockMessageUC(ctrl))
			c, rec := newAuthedContext(http.MethodPost, "/api/message/sendMessage", tt.body,
				"provider-1", models.ServiceTypeTiffinProvider)

			err := handler.SendMessage(c)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expectedErr, decodeBody(t, rec)["error"])
		})
	}
}

func TestSendMessage_UsecaseErrors(t *testing.T) {
	tests := []struct {
		name         string
		ucErr        error
		expectedCode int
	}{
		{name: "spoofed sender", ucErr: usecase.ErrSenderMismatch, expectedCode: http.StatusForbidden},
		{name: "wrong receiver", ucErr: usecase.ErrUnknownReceiver, expectedCode: http.StatusForbidden},
		{name: "storage failure", ucErr: errors.New("redis down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockMessageUC(ctrl)
			handler := NewMessageHandler(mockUC)
			c, rec := newAuthedContext(http.MethodPost, "/api/message/sendMessage",
				`{"senderId": "provider-1", "receiverId": "admin", "message": "hello"}`,
				"provider-1", models.ServiceTypeTiffinProvider)

			mockUC.EXPECT().SendMessage(gomock.Any(), "provider-1", gomock.Any()).Return(nil, tt.ucErr)

			err := handler.SendMessage(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, false, decodeBody(t, rec)["success"])
		})
	}
}

func TestPreviousChat_EndpointMatchesServiceType(t *testing.T) {
	history := &models.PreviousChat{
		HasConversation: true,
		ConversationID:  "conv-1",
		Messages:        []models.ChatMessage{{ID: "m-1", SenderID: "u-1", ReceiverID: "admin", Body: "hi"}},
	}

	tests := []struct {
		name         string
		serviceType  models.ServiceType
		hostelRoute  bool
		expectedCode int
	}{
		{name: "hostel owner on hostel endpoint", serviceType: models.ServiceTypeHostelOwner, hostelRoute: true, expectedCode: http.StatusOK},
		{name: "tiffin provider on tiffin endpoint", serviceType: models.ServiceTypeTiffinProvider, expectedCode: http.StatusOK},
		{name: "unset service type on tiffin endpoint", serviceType: "", expectedCode: http.StatusOK},
		{name: "tiffin provider on hostel endpoint", serviceType: models.ServiceTypeTiffinProvider, hostelRoute: true, expectedCode: http.StatusForbidden},
		{name: "hostel owner on tiffin endpoint", serviceType: models.ServiceTypeHostelOwner, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockMessageUC(ctrl)
			handler := NewMessageHandler(mockUC)
			c, rec := newAuthedContext(http.MethodGet, "/", "", "u-1", tt.serviceType)

			if tt.expectedCode == http.StatusOK {
				mockUC.EXPECT().PreviousChat(gomock.Any(), "u-1").Return(history, nil)
			}

			var err error
			if tt.hostelRoute {
				err = handler.GetHostelOwnerPreviousChat(c)
			} else {
				err = handler.GetTiffinProviderPreviousChat(c)
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var got models.PreviousChat
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.True(t, got.HasConversation)
				assert.Equal(t, "conv-1", got.ConversationID)
				assert.Len(t, got.Messages, 1)
				assert.Equal(t, true, decodeBody(t, rec)["success"])
			}
		})
	}
}

func TestPreviousChat_UsecaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMessageUC(ctrl)
	handler := NewMessageHandler(mockUC)
	c, rec := newAuthedContext(http.MethodGet, "/", "", "u-1", models.ServiceTypeTiffinProvider)

	mockUC.EXPECT().PreviousChat(gomock.Any(), "u-1").Return(nil, errors.New("redis down"))

	err := handler.GetTiffinProviderPreviousChat(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to load conversation", decodeBody(t, rec)["error"])
}

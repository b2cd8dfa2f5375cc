package screen

import (
	"context"
	"sync"
	"time"

	httpclient "github.com/piresc/tiffinhub/internal/pkg/http"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/piresc/tiffinhub/internal/pkg/session"
	"github.com/piresc/tiffinhub/internal/pkg/task"
	"github.com/piresc/tiffinhub/services/chat"
	"github.com/piresc/tiffinhub/services/chat/usecase"
)

const historyTaskKey = "chat:history"

// Conversation is the state behind the admin chat screen for one visit.
// History is fetched once on Open; sends are appended optimistically.
type Conversation struct {
	chatUC  chat.ChatUC
	session session.Store
	tasks   *task.Registry
	now     func() time.Time

	mu     sync.Mutex
	handle models.ConversationHandle
	draft  string
}

// NewConversation mounts the screen state
func NewConversation(chatUC chat.ChatUC, store session.Store) *Conversation {
	return &Conversation{
		chatUC:  chatUC,
		session: store,
		tasks:   task.NewRegistry(),
		now:     time.Now,
		handle:  models.ConversationHandle{Messages: []models.ChatMessage{}},
	}
}

// Open loads the conversation history. A failed load leaves the conversation
// empty and is reported through the returned history.
func (c *Conversation) Open(ctx context.Context) *models.ChatHistory {
	var history *models.ChatHistory
	err := c.tasks.Run(ctx, historyTaskKey, func(ctx context.Context) error {
		history = c.chatUC.GetPreviousChat(ctx)
		return nil
	})
	if err != nil {
		return &models.ChatHistory{Error: err.Error(), Messages: []models.ChatMessage{}}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if history.Success {
		c.handle = models.ConversationHandle{
			ConversationID:  history.ConversationID,
			HasConversation: history.HasConversation,
			Messages:        append([]models.ChatMessage{}, history.Messages...),
		}
	}
	return history
}

// SetDraft replaces the text in the compose box
func (c *Conversation) SetDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = text
}

// Draft returns the text in the compose box
func (c *Conversation) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Send sends the current draft. The message shows up immediately as pending;
// on failure it is withdrawn and the draft is kept for a manual retry.
func (c *Conversation) Send(ctx context.Context) error {
	c.mu.Lock()
	body := c.draft
	c.mu.Unlock()

	if err := usecase.ValidateBody(body); err != nil {
		return err
	}

	localID := task.NewKey()
	c.appendPending(localID, body)

	var ack *models.MessageAck
	err := c.tasks.Run(ctx, localID, func(ctx context.Context) error {
		var err error
		ack, err = c.chatUC.SendMessage(httpclient.ContextWithRequestID(ctx, localID), body)
		return err
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOfLocked(localID)
	if err != nil {
		if idx >= 0 {
			c.handle.Messages = append(c.handle.Messages[:idx], c.handle.Messages[idx+1:]...)
		}
		return err
	}

	if idx >= 0 {
		confirmed := c.handle.Messages[idx]
		if ack != nil && ack.Message.Body != "" {
			confirmed = ack.Message
		}
		confirmed.Pending = false
		c.handle.Messages[idx] = confirmed
	}
	c.handle.HasConversation = true
	if c.draft == body {
		c.draft = ""
	}
	return nil
}

// SendAsync sends the current draft in the background and reports the
// outcome to done. The pending entry is visible as soon as the call starts.
func (c *Conversation) SendAsync(ctx context.Context, done func(error)) error {
	_, err := c.tasks.Go(ctx, "", func(ctx context.Context) {
		err := c.Send(ctx)
		if done != nil {
			done(err)
		}
	})
	return err
}

// Busy reports whether a load or send is still in flight
func (c *Conversation) Busy() bool {
	return c.tasks.Active() > 0
}

func (c *Conversation) appendPending(localID, body string) {
	senderID := ""
	if user := c.session.User(); user != nil {
		senderID = user.ID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.handle.Messages = append(c.handle.Messages, models.ChatMessage{
		ID:         localID,
		SenderID:   senderID,
		ReceiverID: models.AdminReceiverID,
		Body:       body,
		CreatedAt:  c.now(),
		Pending:    true,
	})
}

func (c *Conversation) indexOfLocked(localID string) int {
	for i := len(c.handle.Messages) - 1; i >= 0; i-- {
		if c.handle.Messages[i].ID == localID {
			return i
		}
	}
	return -1
}

// Handle returns a copy of the conversation as currently displayed
func (c *Conversation) Handle() models.ConversationHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := c.handle
	h.Messages = append([]models.ChatMessage{}, c.handle.Messages...)
	return h
}

// Close tears the screen down and cancels any call still in flight
func (c *Conversation) Close() {
	c.tasks.CancelAll()
	c.tasks.Wait()
}

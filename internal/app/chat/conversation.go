package chat

import (
	"context"
	"strings"

	"github.com/mukky254/ukulima-go/internal/api"
)

// MessageAPI is the slice of the messages façade a conversation needs.
// *api.MessageService satisfies it.
type MessageAPI interface {
	ListByRoom(ctx context.Context, roomID string) ([]api.Message, error)
	Send(ctx context.Context, input api.SendMessageInput) (*api.Message, error)
}

// Conversation is the client-side view of one two-party chat room: the
// derived room id and an append-only, insertion-ordered message
// sequence. It is not safe for concurrent use; the caller drives it
// from a single goroutine the way a UI event loop would.
type Conversation struct {
	self     string
	peer     string
	roomID   string
	messages []api.Message
	svc      MessageAPI
}

// NewConversation opens the conversation between the current user and a
// peer. The room id is derived once here and reused for both loading
// and sending.
func NewConversation(svc MessageAPI, selfID, peerID string) *Conversation {
	return &Conversation{
		self:   selfID,
		peer:   peerID,
		roomID: DeriveRoomID(selfID, peerID),
		svc:    svc,
	}
}

// RoomID returns the derived room identifier.
func (c *Conversation) RoomID() string {
	return c.roomID
}

// Peer returns the counterpart's participant id.
func (c *Conversation) Peer() string {
	return c.peer
}

// Refresh replaces the local sequence with the server's current view of
// the room. On failure the local sequence is left untouched.
func (c *Conversation) Refresh(ctx context.Context) error {
	messages, err := c.svc.ListByRoom(ctx, c.roomID)
	if err != nil {
		return err
	}
	c.messages = messages
	return nil
}

// Send posts a text message to the room and appends the server-returned
// record at the end of the local sequence. Empty or whitespace-only
// content is a no-op: nothing is sent and (nil, nil) is returned. On
// failure nothing is appended.
func (c *Conversation) Send(ctx context.Context, content string) (*api.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	message, err := c.svc.Send(ctx, api.SendMessageInput{
		ChatID:   c.roomID,
		Receiver: c.peer,
		Content:  content,
		Type:     api.MessageTypeText,
	})
	if err != nil {
		return nil, err
	}

	c.messages = append(c.messages, *message)
	return message, nil
}

// Messages returns the local message sequence in display order. The
// slice is shared; callers must treat it as read-only.
func (c *Conversation) Messages() []api.Message {
	return c.messages
}

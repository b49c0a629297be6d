package api

import (
	"context"
	"net/url"
)

// MessageService exposes the direct-messaging operations of the API.
type MessageService struct {
	client *Client
}

// NewMessageService returns the messages façade over the given client.
func NewMessageService(c *Client) *MessageService {
	return &MessageService{client: c}
}

// SendMessageInput is the payload for appending a message to a
// conversation. ChatID must be the derived room identifier shared by
// both participants (see the chat package).
type SendMessageInput struct {
	ChatID   string `json:"chatId" validate:"required"`
	Receiver string `json:"receiver" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=text image file"`
}

// ListByRoom returns the messages of a conversation in insertion order.
func (s *MessageService) ListByRoom(ctx context.Context, roomID string) ([]Message, error) {
	var out []Message
	if err := s.client.get(ctx, "/messages/"+url.PathEscape(roomID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Send appends a message to a conversation and returns the server's
// record of it, including the assigned id and timestamp.
func (s *MessageService) Send(ctx context.Context, input SendMessageInput) (*Message, error) {
	var out Message
	if err := s.client.post(ctx, "/messages", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

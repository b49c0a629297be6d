package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByRoomAddressesDerivedRoom(t *testing.T) {
	var gotPath string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[
			{"_id":"m1","chatId":"u1_u2","content":"hi","type":"text"},
			{"_id":"m2","chatId":"u1_u2","content":"hello","type":"text"}
		]`))
	})

	messages, err := NewMessageService(client).ListByRoom(context.Background(), "u1_u2")
	require.NoError(t, err)

	assert.Equal(t, "/messages/u1_u2", gotPath)
	require.Len(t, messages, 2)
	// insertion order is display order
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "m2", messages[1].ID)
}

func TestSendMessagePostsExactWireShape(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Write([]byte(`{"_id":"m3","chatId":"u1_u2","content":"hello","type":"text"}`))
	})

	message, err := NewMessageService(client).Send(context.Background(), SendMessageInput{
		ChatID:   "u1_u2",
		Receiver: "u2",
		Content:  "hello",
		Type:     MessageTypeText,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/messages", gotPath)
	assert.Equal(t, map[string]any{
		"chatId":   "u1_u2",
		"receiver": "u2",
		"content":  "hello",
		"type":     "text",
	}, gotBody)
	assert.Equal(t, "m3", message.ID)
}

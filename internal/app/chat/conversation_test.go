package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukky254/ukulima-go/internal/api"
)

// fakeMessageAPI records façade calls so tests can assert on the wire
// shapes the conversation produces.
type fakeMessageAPI struct {
	listRooms []string
	sendCalls []api.SendMessageInput

	listResult []api.Message
	listErr    error
	sendResult *api.Message
	sendErr    error
}

func (f *fakeMessageAPI) ListByRoom(_ context.Context, roomID string) ([]api.Message, error) {
	f.listRooms = append(f.listRooms, roomID)
	return f.listResult, f.listErr
}

func (f *fakeMessageAPI) Send(_ context.Context, input api.SendMessageInput) (*api.Message, error) {
	f.sendCalls = append(f.sendCalls, input)
	return f.sendResult, f.sendErr
}

func TestLoadAndSendAddressTheSameRoom(t *testing.T) {
	fake := &fakeMessageAPI{
		sendResult: &api.Message{ID: "m1", ChatID: "u1_u2", Content: "hello"},
	}

	// user u2 opens the conversation with u1: the derived room must not
	// depend on who initiates
	conv := NewConversation(fake, "u2", "u1")
	require.Equal(t, "u1_u2", conv.RoomID())

	require.NoError(t, conv.Refresh(context.Background()))
	_, err := conv.Send(context.Background(), "hello")
	require.NoError(t, err)

	require.Len(t, fake.listRooms, 1)
	require.Len(t, fake.sendCalls, 1)
	assert.Equal(t, conv.RoomID(), fake.listRooms[0])
	assert.Equal(t, conv.RoomID(), fake.sendCalls[0].ChatID)
}

func TestSendEmptyContentIsNoop(t *testing.T) {
	fake := &fakeMessageAPI{}
	conv := NewConversation(fake, "u1", "u2")

	for _, content := range []string{"", "   ", "\t\n"} {
		message, err := conv.Send(context.Background(), content)
		require.NoError(t, err)
		assert.Nil(t, message)
	}

	assert.Empty(t, fake.sendCalls)
	assert.Empty(t, conv.Messages())
}

func TestSendAppendsServerRecordAtEnd(t *testing.T) {
	fake := &fakeMessageAPI{
		listResult: []api.Message{
			{ID: "m1", Content: "first"},
			{ID: "m2", Content: "second"},
		},
		sendResult: &api.Message{ID: "m3", ChatID: "u1_u2", Content: "hello"},
	}
	conv := NewConversation(fake, "u1", "u2")

	require.NoError(t, conv.Refresh(context.Background()))

	sent, err := conv.Send(context.Background(), "  hello ")
	require.NoError(t, err)
	require.NotNil(t, sent)

	// content is trimmed before it goes on the wire
	require.Len(t, fake.sendCalls, 1)
	assert.Equal(t, api.SendMessageInput{
		ChatID:   "u1_u2",
		Receiver: "u2",
		Content:  "hello",
		Type:     api.MessageTypeText,
	}, fake.sendCalls[0])

	messages := conv.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, "m3", messages[2].ID)
}

func TestSendFailureAppendsNothing(t *testing.T) {
	fake := &fakeMessageAPI{sendErr: errors.New("boom")}
	conv := NewConversation(fake, "u1", "u2")

	_, err := conv.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Empty(t, conv.Messages())
}

func TestRefreshFailureKeepsLocalSequence(t *testing.T) {
	fake := &fakeMessageAPI{
		listResult: []api.Message{{ID: "m1"}},
	}
	conv := NewConversation(fake, "u1", "u2")
	require.NoError(t, conv.Refresh(context.Background()))

	fake.listErr = errors.New("boom")
	require.Error(t, conv.Refresh(context.Background()))

	require.Len(t, conv.Messages(), 1)
	assert.Equal(t, "m1", conv.Messages()[0].ID)
}

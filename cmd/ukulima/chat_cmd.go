package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mukky254/ukulima-go/internal/api"
	"github.com/mukky254/ukulima-go/internal/app/chat"
)

// chatCmd opens an interactive conversation with another user. Each
// typed line is sent as one text message; /refresh reloads the room,
// /quit leaves. A failed send or reload is reported and the session
// continues.
func (a *appEnv) chatCmd(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: ukulima chat <peer-user-id>")
	}
	peerID := args[0]

	identity, err := a.currentIdentity()
	if err != nil {
		return err
	}
	if peerID == identity.ID {
		return fmt.Errorf("cannot open a conversation with yourself")
	}

	conv := chat.NewConversation(api.NewMessageService(a.client), identity.ID, peerID)

	if err := conv.Refresh(ctx); err != nil {
		return err
	}
	a.printConversation(conv, identity.ID)

	fmt.Fprintln(a.out, "Type a message and press enter. /refresh reloads, /quit leaves.")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case "/quit":
			return nil
		case "/refresh":
			if err := conv.Refresh(ctx); err != nil {
				fmt.Fprintln(os.Stderr, humanError("reload messages", err))
				continue
			}
			a.printConversation(conv, identity.ID)
		default:
			sent, err := conv.Send(ctx, line)
			if err != nil {
				fmt.Fprintln(os.Stderr, humanError("send message", err))
				continue
			}
			if sent != nil {
				a.printMessage(*sent, identity.ID)
			}
		}
	}
	return scanner.Err()
}

func (a *appEnv) printConversation(conv *chat.Conversation, selfID string) {
	messages := conv.Messages()
	if len(messages) == 0 {
		fmt.Fprintf(a.out, "No messages yet in room %s.\n", conv.RoomID())
		return
	}
	for _, m := range messages {
		a.printMessage(m, selfID)
	}
}

func (a *appEnv) printMessage(m api.Message, selfID string) {
	who := m.Sender.DisplayName()
	if m.Sender.ID == selfID {
		who = "you"
	}
	fmt.Fprintf(a.out, "[%s] %s: %s\n", m.CreatedAt.Local().Format("15:04"), who, m.Content)
}

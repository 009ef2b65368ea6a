package chat

import (
	"context"
	"strings"

	"github.com/Veraticus/monee/internal/common"
	"github.com/Veraticus/monee/internal/session"
)

// Reply asks responder about message. On failure the error is logged and ok
// is false.
func Reply(ctx context.Context, responder Responder, message string) (reply session.Message, ok bool) {
	answer, err := responder.Respond(ctx, message)
	if err != nil {
		common.LogError(err, "Chat request failed", common.Fields{"message_length": len(message)})
		return session.Message{}, false
	}
	return session.Message{Role: session.RoleAssistant, Text: answer}, true
}

// Converse records message in the transcript, asks responder and records the
// answer. Failures leave only the user message behind.
func Converse(ctx context.Context, responder Responder, s session.State, message string) session.State {
	message = strings.TrimSpace(message)
	if message == "" {
		return s
	}

	s = session.AppendChat(s, session.Message{Role: session.RoleUser, Text: message})

	if reply, ok := Reply(ctx, responder, message); ok {
		s = session.AppendChat(s, reply)
	}
	return s
}

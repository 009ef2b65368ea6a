package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/monee/internal/chat"
	"github.com/Veraticus/monee/internal/cli"
	"github.com/Veraticus/monee/internal/session"
	"github.com/spf13/cobra"
)

func (a *app) responder() chat.Responder {
	return chat.NewResponder(chat.Config{
		Endpoint:          a.settings.ChatEndpoint,
		Timeout:           a.settings.ChatTimeout,
		MaxAttempts:       a.settings.ChatAttempts,
		RequestsPerMinute: a.settings.ChatRateLimit,
	})
}

func chatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask Moneebot for financial advice",
		Long: `Ask Moneebot for financial advice. With a message, prints a single answer;
without one, starts an interactive conversation (type "exit" to leave).

Answers come from MONEEBOT_URL / chat.endpoint when configured, and from
built-in budgeting tips otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			responder := a.responder()
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				s := chat.Converse(cmd.Context(), responder, session.State{}, strings.Join(args, " "))
				printReplies(out, s.Chat())
				return nil
			}
			return converseInteractively(cmd.Context(), responder, cmd.InOrStdin(), out)
		},
	}
}

// printReplies prints the assistant messages of a transcript, or a notice
// when Moneebot did not answer.
func printReplies(out io.Writer, messages []session.Message) {
	var replies []session.Message
	for _, m := range messages {
		if m.Role == session.RoleAssistant {
			replies = append(replies, m)
		}
	}
	if len(replies) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("Moneebot is unavailable right now. Try again in a moment."))
		return
	}
	fmt.Fprint(out, cli.RenderChat(replies))
}

func converseInteractively(ctx context.Context, responder chat.Responder, in io.Reader, out io.Writer) error {
	reader := cli.NewLineReader(in)
	fmt.Fprintln(out, cli.FormatTitle("Moneebot"))
	fmt.Fprintln(out, cli.FormatInfo(`Ask about budgeting, saving or investing. Type "exit" to leave.`))

	var state session.State
	for {
		fmt.Fprint(out, cli.FormatPrompt("You"))
		line, err := reader.ReadLine(ctx)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, cli.ErrInputCancelled):
			fmt.Fprintln(out)
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		before := len(state.Chat())
		state = chat.Converse(ctx, responder, state, line)
		printReplies(out, state.Chat()[before:])
	}
}

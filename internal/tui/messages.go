package tui

import "github.com/Veraticus/monee/internal/session"

// splashDoneMsg ends the loading screen.
type splashDoneMsg struct{}

// counterTickMsg advances the point counter animation. Ticks from an older
// animation carry a stale generation and are dropped.
type counterTickMsg struct {
	generation int
}

// chatReplyMsg carries Moneebot's answer, or ok=false when the request failed.
type chatReplyMsg struct {
	reply session.Message
	ok    bool
}

// savedMsg reports the outcome of persisting the user.
type savedMsg struct {
	err error
}

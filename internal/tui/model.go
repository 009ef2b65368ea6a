// Package tui implements the interactive monee dashboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/monee/internal/cli"
	"github.com/Veraticus/monee/internal/common"
	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/session"
	"github.com/Veraticus/monee/internal/summary"
	"github.com/Veraticus/monee/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab is one of the dashboard sections.
type Tab int

// Dashboard tabs, in display order.
const (
	TabDashboard Tab = iota
	TabChallenges
	TabTransactions
	TabMoneebot
	TabRewards
	tabCount
)

var tabNames = [...]string{"Dashboard", "Challenges", "Transactions", "Moneebot", "Rewards"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Unknown"
	}
	return tabNames[t]
}

const progressStep = 10

// Model holds the main TUI state.
type Model struct {
	state           session.State
	config          Config
	theme           themes.Theme
	keymap          KeyMap
	help            help.Model
	spinner         spinner.Model
	savings         progress.Model
	challengeBar    progress.Model
	table           table.Model
	input           textinput.Model
	status          string
	tab             Tab
	challengeCursor int
	rewardCursor    int
	counterTarget   int
	counterTicks    int
	counterGen      int
	pendingReplies  int
	saveSeq         int
	writer          *snapshotWriter
	width           int
	height          int
	statusErr       bool
	ready           bool
	quitting        bool
}

// New creates a dashboard for state.
func New(state session.State, cfg Config) Model {
	theme := cfg.Theme

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	input := textinput.New()
	input.Placeholder = "Ask Moneebot about budgeting, saving or investing..."
	input.Prompt = "› "
	input.CharLimit = 500

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: "Date", Width: 12},
			{Title: "Description", Width: 28},
			{Title: "Category", Width: 14},
			{Title: "Amount", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = theme.Selected
	t.SetStyles(styles)

	m := Model{
		state:        state,
		config:       cfg,
		theme:        theme,
		keymap:       DefaultKeyMap(),
		help:         help.New(),
		spinner:      sp,
		savings:      progress.New(progress.WithSolidFill(string(theme.Progress)), progress.WithWidth(36), progress.WithoutPercentage()),
		challengeBar: progress.New(progress.WithSolidFill(string(theme.Primary)), progress.WithWidth(30), progress.WithoutPercentage()),
		table:        t,
		input:        input,
		writer:       newSnapshotWriter(cfg.Saver),
		width:        cfg.Width,
		height:       cfg.Height,
	}
	m.refreshTable()
	m.resize()
	return m
}

// State returns the session as modified by the dashboard.
func (m Model) State() session.State {
	return m.state
}

// ActiveTab returns the visible tab.
func (m Model) ActiveTab() Tab {
	return m.tab
}

// CounterValue returns the animated point counter value.
func (m Model) CounterValue() int {
	return summary.ValueAt(m.counterTarget, m.counterTicks)
}

// Init starts the splash screen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, splashCmd(m.config.SplashDelay))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case splashDoneMsg:
		m.ready = true
		return m, m.startCounter()

	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case counterTickMsg:
		if msg.generation != m.counterGen {
			return m, nil
		}
		m.counterTicks++
		if m.counterTicks < summary.CounterTicks(m.counterTarget) {
			return m, m.tickCounter()
		}
		return m, nil

	case chatReplyMsg:
		m.pendingReplies = max(m.pendingReplies-1, 0)
		if !msg.ok {
			m.setError("Moneebot is unavailable right now. Try again in a moment.")
			return m, nil
		}
		m.state = session.AppendChat(m.state, msg.reply)
		return m, nil

	case savedMsg:
		if msg.err != nil {
			common.LogError(msg.err, "Failed to save snapshot", nil)
			m.setError("Could not save your progress: " + msg.err.Error())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.NextTab):
		m.switchTab((m.tab + 1) % tabCount)
		return m, nil
	case key.Matches(msg, m.keymap.PrevTab):
		m.switchTab((m.tab + tabCount - 1) % tabCount)
		return m, nil
	}

	// The chat input owns every other key except Esc.
	if m.tab == TabMoneebot {
		if msg.Type == tea.KeyEsc {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keymap.Send) {
			return m.submitChat()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keymap.JumpTab):
		n, err := strconv.Atoi(msg.String())
		if err == nil {
			m.switchTab(Tab(n - 1))
		}
		return m, nil
	}

	switch m.tab {
	case TabChallenges:
		return m.handleChallengeKey(msg)
	case TabTransactions:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	case TabRewards:
		return m.handleRewardKey(msg)
	}
	return m, nil
}

func (m *Model) switchTab(t Tab) {
	if t < 0 || t >= tabCount {
		return
	}
	m.tab = t
	m.status = ""
	if t == TabMoneebot {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m Model) handleChallengeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	challenges := m.state.User().Challenges
	if len(challenges) == 0 {
		return m, nil
	}
	m.challengeCursor = min(m.challengeCursor, len(challenges)-1)

	switch {
	case key.Matches(msg, m.keymap.Up):
		m.challengeCursor = max(m.challengeCursor-1, 0)
	case key.Matches(msg, m.keymap.Down):
		m.challengeCursor = min(m.challengeCursor+1, len(challenges)-1)
	case key.Matches(msg, m.keymap.Increase):
		return m.adjustProgress(challenges[m.challengeCursor], progressStep)
	case key.Matches(msg, m.keymap.Decrease):
		return m.adjustProgress(challenges[m.challengeCursor], -progressStep)
	case key.Matches(msg, m.keymap.Fail):
		c := challenges[m.challengeCursor]
		next, err := session.FailChallenge(m.state, c.ID)
		if err != nil {
			m.setError(describeError(err))
			return m, nil
		}
		return m, m.apply(next, fmt.Sprintf("Gave up on %q.", c.Title))
	}
	return m, nil
}

func (m Model) adjustProgress(c model.Challenge, delta int) (tea.Model, tea.Cmd) {
	pct := min(max(c.Progress+delta, 0), 100)
	next, err := session.SetChallengeProgress(m.state, c.ID, pct)
	if err != nil {
		m.setError(describeError(err))
		return m, nil
	}

	if pct == 100 {
		save := m.apply(next, fmt.Sprintf("%s Challenge complete! +%d points", cli.TrophyIcon, c.Points))
		return m, tea.Batch(save, m.startCounter())
	}
	return m, m.apply(next, fmt.Sprintf("%q is now at %d%%.", c.Title, pct))
}

func (m Model) handleRewardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	catalog := model.Catalog()

	switch {
	case key.Matches(msg, m.keymap.Up):
		m.rewardCursor = max(m.rewardCursor-1, 0)
	case key.Matches(msg, m.keymap.Down):
		m.rewardCursor = min(m.rewardCursor+1, len(catalog)-1)
	case key.Matches(msg, m.keymap.Select):
		reward := catalog[m.rewardCursor]
		next, _, err := session.RedeemReward(m.state, reward.ID, m.config.Now())
		if err != nil {
			m.setError(describeError(err))
			return m, nil
		}
		save := m.apply(next, fmt.Sprintf("%s Redeemed %s for %d points.", cli.GiftIcon, reward.Title, reward.Cost))
		return m, tea.Batch(save, m.startCounter())
	}
	return m, nil
}

func (m Model) submitChat() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return m, nil
	}

	m.status = ""
	m.state = session.AppendChat(m.state, session.Message{Role: session.RoleUser, Text: text})
	m.pendingReplies++
	return m, askCmd(m.config.Responder, text)
}

// apply installs next as the current state and returns the save command.
func (m *Model) apply(next session.State, status string) tea.Cmd {
	m.state = next
	m.refreshTable()
	m.status = status
	m.statusErr = false
	if m.writer == nil {
		return nil
	}
	m.saveSeq++
	return saveCmd(m.writer, m.saveSeq, next.User())
}

// flush writes the current state if any change has not been saved yet.
func (m Model) flush(ctx context.Context) error {
	if m.writer == nil || m.saveSeq == 0 {
		return nil
	}
	return m.writer.save(ctx, m.saveSeq, m.state.User())
}

func (m *Model) setError(text string) {
	m.status = text
	m.statusErr = true
}

func (m *Model) startCounter() tea.Cmd {
	m.counterGen++
	m.counterTarget = m.state.User().TotalPoints
	m.counterTicks = 0
	if summary.CounterTicks(m.counterTarget) == 0 {
		return nil
	}
	return m.tickCounter()
}

func (m Model) tickCounter() tea.Cmd {
	return counterTickCmd(m.config.TickInterval, m.counterGen)
}

func (m *Model) refreshTable() {
	txns := m.state.User().Transactions
	rows := make([]table.Row, 0, len(txns))
	for i := len(txns) - 1; i >= 0; i-- {
		tx := txns[i]
		amount := "+" + cli.FormatMoney(tx.Amount)
		if tx.IsExpense() {
			amount = "-" + cli.FormatMoney(tx.Amount)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(tx.ID),
			tx.Date,
			tx.Description,
			themes.GetCategoryIcon(tx.Category) + " " + tx.Category,
			amount,
		})
	}
	m.table.SetRows(rows)
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.table.SetHeight(max(m.height-12, 5))
	m.input.Width = max(m.width-8, 20)
	m.savings.Width = min(max(m.width/3-8, 10), 36)
	m.challengeBar.Width = min(max(m.width/2-10, 10), 40)
}

func describeError(err error) string {
	switch {
	case errors.Is(err, common.ErrInsufficientPoints):
		return "Not enough points for that reward yet."
	case errors.Is(err, common.ErrChallengeNotFound):
		return "That challenge no longer exists."
	default:
		return err.Error()
	}
}

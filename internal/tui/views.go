package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/monee/internal/cli"
	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/session"
	"github.com/Veraticus/monee/internal/summary"
	"github.com/Veraticus/monee/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

const cardWidth = 30

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderSplash()
	}

	var body string
	switch m.tab {
	case TabDashboard:
		body = m.renderDashboard()
	case TabChallenges:
		body = m.renderChallenges()
	case TabTransactions:
		body = m.renderTransactions()
	case TabMoneebot:
		body = m.renderChat()
	case TabRewards:
		body = m.renderRewards()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		"",
		body,
		"",
		m.renderStatus(),
		m.help.View(m.keymap),
	)
}

func (m Model) renderSplash() string {
	logo := m.theme.Title.Render(cli.MoneyIcon + " monee")
	tagline := m.theme.Subtitle.Render("Level up your finances")
	content := lipgloss.JoinVertical(lipgloss.Center,
		logo,
		tagline,
		"",
		m.spinner.View()+" Loading your dashboard...",
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderHeader() string {
	user := m.state.User()
	title := m.theme.Title.Render("monee")
	welcome := m.theme.Subtitle.Render(fmt.Sprintf("Welcome back, %s!", user.Name))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", welcome)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.tab {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) card(title string, lines ...string) string {
	content := append([]string{m.theme.Subtitle.Render(title)}, lines...)
	return m.theme.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, content...))
}

func (m Model) renderDashboard() string {
	user := m.state.User()
	now := m.config.Now()
	pct := summary.SavingsPercentage(user)

	savings := m.theme.AccentCard.Width(cardWidth*2 + 4).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render("Savings Goal"),
		m.theme.Bold.Render(fmt.Sprintf("%s of %s",
			cli.FormatMoney(user.CurrentSavings), cli.FormatMoney(user.SavingsGoal))),
		m.savings.ViewAs(float64(pct)/100)+fmt.Sprintf(" %d%%", pct),
	))

	credit := m.card("Credit Score",
		m.theme.Bold.Render(strconv.Itoa(user.CreditScore)),
		m.theme.StatusInfo.Render(summary.CreditRating(user.CreditScore)),
	)
	spending := m.card("Monthly Spending",
		lipgloss.NewStyle().Foreground(m.theme.Spending).Bold(true).
			Render(cli.FormatMoney(summary.MonthlySpending(user, now))),
		m.theme.Normal.Render(now.Format("January 2006")),
	)
	points := m.card("Points",
		m.theme.Points.Render(fmt.Sprintf("%s %d", cli.TrophyIcon, m.CounterValue())),
		m.theme.Normal.Render(fmt.Sprintf("%d active challenges", activeChallenges(user))),
	)

	rows := []string{
		savings,
		lipgloss.JoinHorizontal(lipgloss.Top, credit, " ", spending),
		points,
	}

	if breakdown := summary.SpendingByCategory(user, now); len(breakdown) > 0 {
		lines := make([]string, 0, len(breakdown))
		for _, c := range breakdown {
			lines = append(lines, fmt.Sprintf("%s %-16s %s", themes.GetCategoryIcon(c.Category), c.Category, cli.FormatMoney(c.Amount)))
		}
		rows = append(rows, m.card("Spending by Category", lines...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func activeChallenges(user model.User) int {
	n := 0
	for _, c := range user.Challenges {
		if c.Status == model.ChallengeActive {
			n++
		}
	}
	return n
}

func (m Model) renderChallenges() string {
	challenges := m.state.User().Challenges
	if len(challenges) == 0 {
		return m.theme.Normal.Render("No challenges yet. Create one with: monee challenges create")
	}

	blocks := make([]string, 0, len(challenges))
	for i, c := range challenges {
		style := m.theme.Card
		if i == m.challengeCursor {
			style = m.theme.AccentCard
		}
		status := m.theme.StatusInfo.Render("active")
		switch c.Status {
		case model.ChallengeCompleted:
			status = m.theme.StatusSuccess.Render("completed")
		case model.ChallengeFailed:
			status = m.theme.StatusError.Render("failed")
		}

		blocks = append(blocks, style.Width(cardWidth*2+4).Render(lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Bold.Render(c.Title)+"  "+status,
			m.theme.Normal.Render(c.Description),
			m.challengeBar.ViewAs(float64(c.Progress)/100)+fmt.Sprintf(" %d%%", c.Progress),
			fmt.Sprintf("$%d / $%d   %s", summary.ChallengeCurrentAmount(c), c.AmountNeeded,
				m.theme.Points.Render(fmt.Sprintf("+%d pts", c.Points))),
		)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m Model) renderTransactions() string {
	txns := m.state.User().Transactions
	if len(txns) == 0 {
		return m.theme.Normal.Render("No transactions yet. Import a file with: monee import <file>")
	}
	footer := m.theme.Subtitle.Render(fmt.Sprintf("%d transactions", len(txns)))
	return lipgloss.JoinVertical(lipgloss.Left, m.table.View(), footer)
}

func (m Model) renderChat() string {
	messages := m.state.Chat()
	limit := max(m.height-14, 4)
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}

	lines := make([]string, 0, len(messages)+3)
	if len(messages) == 0 {
		lines = append(lines, m.theme.Subtitle.Render(cli.RobotIcon+" Hi! I'm Moneebot. Ask me anything about money."))
	}
	for _, msg := range messages {
		lines = append(lines, m.renderMessage(msg))
	}
	if m.pendingReplies > 0 {
		lines = append(lines, m.theme.Subtitle.Render(cli.RobotIcon+" Moneebot is typing..."))
	}
	lines = append(lines, "", m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderMessage(msg session.Message) string {
	width := max(m.width-12, 20)
	body := lipgloss.NewStyle().Width(width).Render(msg.Text)
	if msg.Role == session.RoleAssistant {
		return lipgloss.NewStyle().Foreground(m.theme.Primary).Render(cli.RobotIcon+" Moneebot") + "\n" + body
	}
	return m.theme.Bold.Render("You") + "\n" + body
}

func (m Model) renderRewards() string {
	balance := m.state.User().TotalPoints
	lines := []string{m.theme.Points.Render(fmt.Sprintf("%s %d points available", cli.TrophyIcon, balance)), ""}

	for i, r := range model.Catalog() {
		cursor := "  "
		if i == m.rewardCursor {
			cursor = "› "
		}
		availability := m.theme.Subtitle.Render(fmt.Sprintf("need %d more", r.Cost-balance))
		if balance >= r.Cost {
			availability = m.theme.StatusSuccess.Render(cli.GiftIcon + " available")
		}
		line := fmt.Sprintf("%s%-24s %5d pts  %s", cursor, r.Title, r.Cost, availability)
		if i == m.rewardCursor {
			line = m.theme.Selected.Render(line)
		}
		lines = append(lines, line, "    "+m.theme.Normal.Render(r.Description))
	}

	if redeemed := m.state.User().Redemptions; len(redeemed) > 0 {
		lines = append(lines, "", m.theme.Subtitle.Render(fmt.Sprintf("%d rewards redeemed this session", len(redeemed))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.theme.StatusError.Render(m.status)
	}
	return m.theme.StatusSuccess.Render(m.status)
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/smena/internal/cli/formatter"
	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// monthLoadedMsg signals that a month view has been loaded.
type monthLoadedMsg struct {
	resp *contract.MonthResponse
	err  error
}

// statsLoadedMsg signals that the period summary has been loaded.
type statsLoadedMsg struct {
	resp *contract.StatsResponse
	err  error
}

// dashboardKeys holds the dashboard key bindings.
type dashboardKeys struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		PrevMonth: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dashboardModel shows the month calendar with derived stats and the
// current-period record summary. Months are navigated with the arrow
// keys.
type dashboardModel struct {
	app    *App
	userID int64
	keys   dashboardKeys

	year  int
	month time.Month

	monthResp *contract.MonthResponse
	statsResp *contract.StatsResponse
	loading   bool
	err       error
}

func newDashboardModel(app *App, userID int64) *dashboardModel {
	now := time.Now()
	return &dashboardModel{
		app:     app,
		userID:  userID,
		keys:    newDashboardKeys(),
		year:    now.Year(),
		month:   now.Month(),
		loading: true,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadMonth(), m.loadStats())
}

func (m *dashboardModel) loadMonth() tea.Cmd {
	app, userID := m.app, m.userID
	monthKey := domain.MonthKey(m.year, m.month)
	return func() tea.Msg {
		resp, err := app.Schedules.MonthView(context.Background(), contract.MonthRequest{
			UserID:   userID,
			MonthKey: monthKey,
		})
		return monthLoadedMsg{resp: resp, err: err}
	}
}

func (m *dashboardModel) loadStats() tea.Cmd {
	app, userID := m.app, m.userID
	return func() tea.Msg {
		resp, err := app.Records.Stats(context.Background(), contract.StatsRequest{
			UserID: userID,
			Period: domain.PeriodMonth,
		})
		return statsLoadedMsg{resp: resp, err: err}
	}
}

func (m *dashboardModel) shiftMonth(delta int) tea.Cmd {
	t := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.year, m.month = t.Year(), t.Month()
	m.loading = true
	return m.loadMonth()
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevMonth):
			return m, m.shiftMonth(-1)
		case key.Matches(msg, m.keys.NextMonth):
			return m, m.shiftMonth(1)
		case key.Matches(msg, m.keys.Today):
			now := time.Now()
			m.year, m.month = now.Year(), now.Month()
			m.loading = true
			return m, m.loadMonth()
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, tea.Batch(m.loadMonth(), m.loadStats())
		}

	case monthLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.monthResp = msg.resp
		}

	case statsLoadedMsg:
		if msg.err == nil {
			m.statsResp = msg.resp
		}
	}

	return m, nil
}

func (m *dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Smena " + domain.MonthKey(m.year, m.month)))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.loading || m.monthResp == nil:
		b.WriteString(formatter.StyleDim.Render("Loading..."))
		b.WriteString("\n")
	default:
		b.WriteString(formatter.MonthCalendar(m.monthResp.MonthKey, m.monthResp.Days))
		b.WriteString("\n")
		b.WriteString(formatter.FormatMonthStats(m.monthResp.Stats))
		b.WriteString("\n")
		if m.statsResp != nil && m.statsResp.Summary.TotalRecords > 0 {
			b.WriteString(fmt.Sprintf("%s %s\n",
				formatter.StyleBlue.Render("Logged this month:"),
				formatter.FormatSummary(m.statsResp.Summary),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *dashboardModel) helpLine() string {
	bindings := []key.Binding{m.keys.PrevMonth, m.keys.NextMonth, m.keys.Today, m.keys.Refresh, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	return formatter.StyleDim.Render(strings.Join(parts, "  ·  "))
}

package tui

import (
	"fmt"

	"fittrack/internal/service"
	"fittrack/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryModel is the workout history list screen model
type HistoryModel struct {
	queryService *service.QueryService
	summaries    []store.WorkoutSummary
	cursor       int
	offset       int
	total        int
	pageSize     int
	loading      bool
	err          error
}

// NewHistoryModel creates a new history model
func NewHistoryModel(qs *service.QueryService, pageSize int) HistoryModel {
	if pageSize <= 0 {
		pageSize = 15
	}
	return HistoryModel{
		queryService: qs,
		pageSize:     pageSize,
		loading:      true,
	}
}

// Init initializes the history screen
func (m HistoryModel) Init() tea.Cmd {
	return m.loadPage
}

type historyLoadedMsg struct {
	summaries []store.WorkoutSummary
	total     int
	err       error
}

func (m HistoryModel) loadPage() tea.Msg {
	summaries, total, err := m.queryService.HistoryPage(m.pageSize, m.offset)
	if err != nil {
		return historyLoadedMsg{err: err}
	}
	return historyLoadedMsg{summaries: summaries, total: total}
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.summaries = msg.summaries
		m.total = msg.total
		if m.cursor >= len(m.summaries) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.summaries)-1 {
				m.cursor++
			}
		case "pgdown":
			if m.offset+m.pageSize < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "r":
			m.loading = true
			return m, m.loadPage
		case "enter":
			if m.cursor < len(m.summaries) {
				id := m.summaries[m.cursor].ID
				return m, func() tea.Msg { return OpenDetailMsg{SummaryID: id} }
			}
		}
	}
	return m, nil
}

// View renders the history list
func (m HistoryModel) View() string {
	if m.loading {
		return "\n  Loading workout history..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.summaries) == 0 {
		return "\n  No workouts stored yet."
	}

	title := cardTitleStyle.Render(fmt.Sprintf("Workout History (%d total)", m.total))

	header := tableHeaderStyle.Render(fmt.Sprintf("%-16s  %-14s  %9s  %9s  %10s  %9s",
		"Recorded", "Activity", "Duration", "Distance", "Avg speed", "Calories"))

	rows := []string{header}
	for i, s := range m.summaries {
		line := fmt.Sprintf("%-16s  %-14s  %8.3fh  %7.3fkm  %7.3fkm/h  %9.3f",
			s.RecordedAt.Format("2006-01-02 15:04"),
			s.Activity,
			s.DurationHours,
			s.DistanceKm,
			s.AvgSpeedKmh,
			s.Calories,
		)
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}

	page := m.offset/m.pageSize + 1
	pages := (m.total + m.pageSize - 1) / m.pageSize
	footer := statusStyle.Render(fmt.Sprintf(
		"Page %d/%d  -  j/k move, enter detail, pgup/pgdn page, r refresh", page, pages))

	return lipgloss.JoinVertical(lipgloss.Left, title,
		lipgloss.JoinVertical(lipgloss.Left, rows...), footer)
}

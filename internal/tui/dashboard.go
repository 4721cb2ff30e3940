package tui

import (
	"fmt"

	"fittrack/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService) DashboardModel {
	return DashboardModel{
		queryService: qs,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboardData()
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || m.data.TotalWorkouts == 0 {
		return "\n  No workouts stored yet. Run 'fittrack import <file>' to ingest sensor packets."
	}

	var sections []string

	totalsCard := m.renderTotalsCard()
	sections = append(sections, totalsCard)

	if len(m.data.CalorieTrend) > 2 {
		sections = append(sections, m.renderChart())
	}

	sections = append(sections, m.renderRecentWorkouts())

	help := statusStyle.Render("Press 'r' to refresh, '2' for workout history")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderTotalsCard() string {
	title := cardTitleStyle.Render("Totals by Activity")

	lines := []string{
		RenderMetric("Workouts", fmt.Sprintf("%d", m.data.TotalWorkouts)),
		"",
	}
	for _, t := range m.data.Totals {
		value := fmt.Sprintf("%d  |  %.1f km  |  %.0f kcal", t.Count, t.DistanceKm, t.Calories)
		lines = append(lines, RenderMetric(t.Activity, value))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(56).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart() string {
	title := cardTitleStyle.Render("Calories Burned - Recent Workouts")

	graph := asciigraph.Plot(m.data.CalorieTrend,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderRecentWorkouts() string {
	title := cardTitleStyle.Render("Recent Workouts")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-14s  %9s  %9s  %10s  %9s",
		"Date", "Activity", "Duration", "Distance", "Avg speed", "Calories"))

	rows := []string{header}
	for _, s := range m.data.Recent {
		row := tableRowStyle.Render(fmt.Sprintf("%-10s  %-14s  %8.3fh  %7.3fkm  %7.3fkm/h  %9.3f",
			s.RecordedAt.Format("Jan 02"),
			s.Activity,
			s.DurationHours,
			s.DistanceKm,
			s.AvgSpeedKmh,
			s.Calories,
		))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

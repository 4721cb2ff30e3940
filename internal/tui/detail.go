package tui

import (
	"fmt"

	"fittrack/internal/report"
	"fittrack/internal/service"
	"fittrack/internal/store"
	"fittrack/internal/workout"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailModel is the single-workout detail screen model
type DetailModel struct {
	queryService *service.QueryService
	summaryID    int64
	summary      *store.WorkoutSummary
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewDetailModel creates a new detail model
func NewDetailModel(qs *service.QueryService, summaryID int64, width, height int) DetailModel {
	m := DetailModel{
		queryService: qs,
		summaryID:    summaryID,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m DetailModel) Init() tea.Cmd {
	return m.loadDetail
}

type detailLoadedMsg struct {
	summary *store.WorkoutSummary
	err     error
}

func (m DetailModel) loadDetail() tea.Msg {
	summary, err := m.queryService.GetSummary(m.summaryID)
	return detailLoadedMsg{summary: summary, err: err}
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.summary = msg.summary
		if m.ready && m.summary != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.summary != nil {
			m.viewport.SetContent(m.renderContent())
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen
func (m DetailModel) View() string {
	if m.loading {
		return "\n  Loading workout..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if !m.ready || m.summary == nil {
		return "\n  No workout selected."
	}

	footer := statusStyle.Render("esc back, j/k scroll")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m DetailModel) renderContent() string {
	s := m.summary

	title := cardTitleStyle.Render(fmt.Sprintf("%s on %s",
		s.Activity, s.RecordedAt.Format("2006-01-02 15:04")))

	lines := []string{
		RenderMetric("Activity", s.Activity),
		RenderMetric("Duration", fmt.Sprintf("%.3f h", s.DurationHours)),
		RenderMetric("Distance", fmt.Sprintf("%.3f km", s.DistanceKm)),
		RenderMetric("Avg speed", fmt.Sprintf("%.3f km/h", s.AvgSpeedKmh)),
		RenderMetric("Calories", fmt.Sprintf("%.3f kcal", s.Calories)),
	}
	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{title}, lines...)...))

	line := report.Line(workout.Summary{
		Activity:      s.Activity,
		DurationHours: s.DurationHours,
		DistanceKm:    s.DistanceKm,
		MeanSpeedKmh:  s.AvgSpeedKmh,
		Calories:      s.Calories,
	})
	reportCard := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Report Line"), line))

	return lipgloss.JoinVertical(lipgloss.Left, card, reportCard)
}

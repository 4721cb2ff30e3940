package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Workout history"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	dashSection := m.renderSection("Dashboard", []keyHelp{
		{"r", "Refresh data"},
	})
	sections = append(sections, dashSection)

	historySection := m.renderSection("Workout History", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"enter", "Open workout detail"},
		{"pgdn", "Next page"},
		{"pgup", "Previous page"},
		{"r", "Refresh list"},
	})
	sections = append(sections, historySection)

	fieldsSection := m.renderFieldsHelp()
	sections = append(sections, fieldsSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var b strings.Builder
	b.WriteString(metricValueStyle.Render(title) + "\n")
	for _, k := range keys {
		b.WriteString("  " + helpKeyStyle.Render(padKey(k.key)) + " " + helpDescStyle.Render(k.desc) + "\n")
	}
	return b.String()
}

func (m HelpModel) renderFieldsHelp() string {
	fields := []keyHelp{
		{"Duration", "elapsed workout time in hours"},
		{"Distance", "kilometers covered, derived from the action count"},
		{"Avg speed", "km/h; swimming derives it from pool length and laps"},
		{"Calories", "kcal estimate from the activity-specific formula"},
	}

	var b strings.Builder
	b.WriteString(metricValueStyle.Render("Summary Fields") + "\n")
	for _, f := range fields {
		b.WriteString("  " + helpKeyStyle.Render(padKey(f.key)) + " " + helpDescStyle.Render(f.desc) + "\n")
	}
	return b.String()
}

func padKey(key string) string {
	const width = 10
	if len(key) >= width {
		return key
	}
	return key + strings.Repeat(" ", width-len(key))
}

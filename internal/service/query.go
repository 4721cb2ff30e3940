package service

import (
	"fmt"

	"fittrack/internal/store"
)

// ChartPoints is how many recent workouts feed the dashboard calorie trend
const ChartPoints = 30

// QueryService provides read-only queries for the TUI
type QueryService struct {
	store *store.DB
}

// NewQueryService creates a new query service
func NewQueryService(db *store.DB) *QueryService {
	return &QueryService{store: db}
}

// DashboardData contains all data needed for the dashboard
type DashboardData struct {
	TotalWorkouts int
	Totals        []store.ActivityTotal
	Recent        []store.WorkoutSummary
	CalorieTrend  []float64
}

// GetDashboardData fetches all data needed for the dashboard
func (q *QueryService) GetDashboardData() (*DashboardData, error) {
	data := &DashboardData{}

	count, err := q.store.CountSummaries()
	if err != nil {
		return nil, fmt.Errorf("counting workouts: %w", err)
	}
	data.TotalWorkouts = count

	totals, err := q.store.ActivityTotals()
	if err != nil {
		return nil, fmt.Errorf("loading activity totals: %w", err)
	}
	data.Totals = totals

	recent, err := q.store.ListSummaries(5, 0)
	if err != nil {
		return nil, fmt.Errorf("loading recent workouts: %w", err)
	}
	data.Recent = recent

	trend, err := q.store.CalorieSeries(ChartPoints)
	if err != nil {
		return nil, fmt.Errorf("loading calorie trend: %w", err)
	}
	data.CalorieTrend = trend

	return data, nil
}

// HistoryPage returns one page of stored summaries plus the total count
func (q *QueryService) HistoryPage(limit, offset int) ([]store.WorkoutSummary, int, error) {
	summaries, err := q.store.ListSummaries(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing workouts: %w", err)
	}

	total, err := q.store.CountSummaries()
	if err != nil {
		return nil, 0, fmt.Errorf("counting workouts: %w", err)
	}

	return summaries, total, nil
}

// GetSummary returns one stored summary by ID
func (q *QueryService) GetSummary(id int64) (*store.WorkoutSummary, error) {
	return q.store.GetSummary(id)
}

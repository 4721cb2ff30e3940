package store

import (
	"errors"
	"math"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenTest()
	if err != nil {
		t.Fatalf("OpenTest: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleSummary(activity string, recordedAt time.Time, calories float64) *WorkoutSummary {
	return &WorkoutSummary{
		Activity:      activity,
		RecordedAt:    recordedAt,
		DurationHours: 1,
		DistanceKm:    9.75,
		AvgSpeedKmh:   9.75,
		Calories:      calories,
	}
}

func TestInsertAndGetSummary(t *testing.T) {
	db := testDB(t)

	recorded := time.Date(2026, 8, 20, 7, 30, 0, 0, time.UTC)
	s := sampleSummary("Running", recorded, 798.86)

	id, err := db.InsertSummary(s)
	if err != nil {
		t.Fatalf("InsertSummary: %v", err)
	}
	if id == 0 {
		t.Fatal("InsertSummary returned id 0")
	}

	got, err := db.GetSummary(id)
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if got.Activity != "Running" {
		t.Errorf("Activity = %q, want Running", got.Activity)
	}
	if !got.RecordedAt.Equal(recorded) {
		t.Errorf("RecordedAt = %v, want %v", got.RecordedAt, recorded)
	}
	if math.Abs(got.Calories-798.86) > 1e-9 {
		t.Errorf("Calories = %v, want 798.86", got.Calories)
	}
}

func TestGetSummaryNotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetSummary(12345)
	if !errors.Is(err, ErrSummaryNotFound) {
		t.Errorf("error = %v, want ErrSummaryNotFound", err)
	}
}

func TestListSummariesOrderAndPaging(t *testing.T) {
	db := testDB(t)

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s := sampleSummary("Running", base.AddDate(0, 0, i), float64(100+i))
		if _, err := db.InsertSummary(s); err != nil {
			t.Fatalf("InsertSummary %d: %v", i, err)
		}
	}

	page, err := db.ListSummaries(2, 0)
	if err != nil {
		t.Fatalf("ListSummaries: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("got %d summaries, want 2", len(page))
	}
	// Most recent first
	if page[0].Calories != 104 || page[1].Calories != 103 {
		t.Errorf("page order = %v, %v; want 104, 103", page[0].Calories, page[1].Calories)
	}

	page, err = db.ListSummaries(2, 4)
	if err != nil {
		t.Fatalf("ListSummaries offset: %v", err)
	}
	if len(page) != 1 || page[0].Calories != 100 {
		t.Errorf("last page = %+v, want single summary with 100 kcal", page)
	}

	count, err := db.CountSummaries()
	if err != nil {
		t.Fatalf("CountSummaries: %v", err)
	}
	if count != 5 {
		t.Errorf("CountSummaries = %d, want 5", count)
	}
}

func TestActivityTotals(t *testing.T) {
	db := testDB(t)

	recorded := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	inserts := []*WorkoutSummary{
		sampleSummary("Running", recorded, 700),
		sampleSummary("Running", recorded.Add(time.Hour), 300),
		sampleSummary("Swimming", recorded.Add(2*time.Hour), 336),
	}
	for _, s := range inserts {
		if _, err := db.InsertSummary(s); err != nil {
			t.Fatalf("InsertSummary: %v", err)
		}
	}

	totals, err := db.ActivityTotals()
	if err != nil {
		t.Fatalf("ActivityTotals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("got %d totals, want 2", len(totals))
	}

	// Ordered by activity label
	if totals[0].Activity != "Running" || totals[0].Count != 2 || totals[0].Calories != 1000 {
		t.Errorf("Running total = %+v, want count 2 and 1000 kcal", totals[0])
	}
	if totals[1].Activity != "Swimming" || totals[1].Count != 1 {
		t.Errorf("Swimming total = %+v, want count 1", totals[1])
	}
}

func TestCalorieSeries(t *testing.T) {
	db := testDB(t)

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		s := sampleSummary("Running", base.AddDate(0, 0, i), float64(10*(i+1)))
		if _, err := db.InsertSummary(s); err != nil {
			t.Fatalf("InsertSummary: %v", err)
		}
	}

	// Only the 3 most recent, oldest first
	series, err := db.CalorieSeries(3)
	if err != nil {
		t.Fatalf("CalorieSeries: %v", err)
	}
	want := []float64{20, 30, 40}
	if len(series) != len(want) {
		t.Fatalf("got %d points, want %d", len(series), len(want))
	}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("series[%d] = %v, want %v", i, series[i], want[i])
		}
	}
}

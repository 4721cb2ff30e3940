package workout

import "fmt"

// Swimming is a pool session recorded as a stroke count plus pool geometry.
// Mean speed comes from pool length and lap count rather than from strokes;
// the reported distance stays stroke-based. The two deliberately use
// different bases, so distance/duration does not equal the reported speed.
type Swimming struct {
	Base
	poolLengthM float64
	poolLaps    int
}

// Coefficients of the swimming calorie model.
const (
	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2.0
)

// NewSwimming builds a swimming workout from raw sensor inputs.
func NewSwimming(action int, duration, weight, poolLengthM float64, poolLaps int) (Swimming, error) {
	base, err := newBase(LabelSwimming, action, duration, weight, strokeM)
	if err != nil {
		return Swimming{}, err
	}
	if poolLengthM <= 0 {
		return Swimming{}, fmt.Errorf("%w: pool length %g m must be positive", ErrInvalidMeasurement, poolLengthM)
	}
	if poolLaps < 0 {
		return Swimming{}, fmt.Errorf("%w: pool lap count %d is negative", ErrInvalidMeasurement, poolLaps)
	}
	return Swimming{Base: base, poolLengthM: poolLengthM, poolLaps: poolLaps}, nil
}

// PoolLengthM returns the pool length in meters.
func (s Swimming) PoolLengthM() float64 { return s.poolLengthM }

// PoolLaps returns how many times the athlete crossed the pool.
func (s Swimming) PoolLaps() int { return s.poolLaps }

// MeanSpeedKmh derives speed from pool geometry, ignoring the stroke count.
func (s Swimming) MeanSpeedKmh() float64 {
	return s.poolLengthM * float64(s.poolLaps) / mPerKm / s.DurationHours()
}

// SpentCalories estimates energy expenditure in kcal.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeedKmh() + swimSpeedShift) * swimWeightMultiplier *
		s.Weight() * s.DurationHours()
}

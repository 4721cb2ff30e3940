package workout

import (
	"errors"
	"fmt"
)

// ErrInvalidMeasurement is returned when a constructor receives a measurement
// outside its physical bounds (non-positive duration or weight, negative counts).
var ErrInvalidMeasurement = errors.New("invalid measurement")

// Activity labels. These are fixed at construction and appear verbatim in
// reports and the history store, so they must never be derived from type names.
const (
	LabelRunning       = "Running"
	LabelSportsWalking = "SportsWalking"
	LabelSwimming      = "Swimming"
)

const (
	mPerKm   = 1000.0
	minPerHr = 60.0
	strideM  = 0.65 // meters covered per step when walking or running
	strokeM  = 1.38 // meters covered per swim stroke
)

// Workout is one recorded training session. The three concrete types
// (Running, SportsWalking, Swimming) share the distance model from Base and
// supply their own energy-expenditure formula.
type Workout interface {
	Label() string
	DurationHours() float64
	DistanceKm() float64
	MeanSpeedKmh() float64
	SpentCalories() float64
}

// Base holds the raw sensor inputs common to every workout and the shared
// distance/speed model. Action count is steps for running and walking,
// strokes for swimming; stepM is the distance covered by one action.
type Base struct {
	action   int
	duration float64 // hours
	weight   float64 // kg
	label    string
	stepM    float64
}

func newBase(label string, action int, duration, weight, stepM float64) (Base, error) {
	if action < 0 {
		return Base{}, fmt.Errorf("%w: action count %d is negative", ErrInvalidMeasurement, action)
	}
	if duration <= 0 {
		return Base{}, fmt.Errorf("%w: duration %g h must be positive", ErrInvalidMeasurement, duration)
	}
	if weight <= 0 {
		return Base{}, fmt.Errorf("%w: weight %g kg must be positive", ErrInvalidMeasurement, weight)
	}
	return Base{
		action:   action,
		duration: duration,
		weight:   weight,
		label:    label,
		stepM:    stepM,
	}, nil
}

// Label returns the activity label fixed at construction.
func (b Base) Label() string { return b.label }

// DurationHours returns the elapsed workout time in hours.
func (b Base) DurationHours() float64 { return b.duration }

// Weight returns the athlete mass in kg.
func (b Base) Weight() float64 { return b.weight }

// DistanceKm converts the action count to kilometers covered.
func (b Base) DistanceKm() float64 {
	return float64(b.action) * b.stepM / mPerKm
}

// MeanSpeedKmh is the average speed over the whole workout. Constructors
// guarantee duration > 0, so the division is always defined.
func (b Base) MeanSpeedKmh() float64 {
	return b.DistanceKm() / b.duration
}

// SpentCalories on the base type is a programming error: every concrete
// workout supplies its own formula, and nothing may compute energy
// expenditure without one.
func (b Base) SpentCalories() float64 {
	panic(fmt.Sprintf("workout: SpentCalories not implemented for base workout %q", b.label))
}

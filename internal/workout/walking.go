package workout

import "fmt"

// SportsWalking is a power-walking session. Distance and speed come from the
// shared stride model; the calorie formula additionally needs the athlete's
// height to account for stride mechanics.
type SportsWalking struct {
	Base
	height float64 // cm
}

// Coefficients of the walking calorie model.
const (
	walkWeightMultiplier      = 0.035
	walkSpeedHeightMultiplier = 0.029
	kmhToMs                   = 0.278
	cmPerM                    = 100.0
)

// NewSportsWalking builds a walking workout from raw sensor inputs.
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	base, err := newBase(LabelSportsWalking, action, duration, weight, strideM)
	if err != nil {
		return SportsWalking{}, err
	}
	if height <= 0 {
		return SportsWalking{}, fmt.Errorf("%w: height %g cm must be positive", ErrInvalidMeasurement, height)
	}
	return SportsWalking{Base: base, height: height}, nil
}

// HeightCm returns the athlete height in centimeters.
func (w SportsWalking) HeightCm() float64 { return w.height }

// SpentCalories estimates energy expenditure in kcal. The formula works in
// m/s and meters, hence the unit conversions.
func (w SportsWalking) SpentCalories() float64 {
	speedMS := w.MeanSpeedKmh() * kmhToMs
	return (walkWeightMultiplier*w.Weight() +
		speedMS*speedMS/(w.height/cmPerM)*walkSpeedHeightMultiplier*w.Weight()) *
		w.DurationHours() * minPerHr
}

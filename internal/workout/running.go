package workout

// Running is a run recorded as a step count. It uses the shared stride-based
// distance and speed model and an empirical calorie formula calibrated on
// mean speed.
type Running struct {
	Base
}

// Empirical coefficients of the running calorie model. Not configurable.
const (
	runSpeedMultiplier = 18.0
	runSpeedShift      = 1.79
)

// NewRunning builds a running workout from raw sensor inputs.
func NewRunning(action int, duration, weight float64) (Running, error) {
	base, err := newBase(LabelRunning, action, duration, weight, strideM)
	if err != nil {
		return Running{}, err
	}
	return Running{Base: base}, nil
}

// SpentCalories estimates energy expenditure in kcal.
func (r Running) SpentCalories() float64 {
	return (runSpeedMultiplier*r.MeanSpeedKmh() + runSpeedShift) *
		r.Weight() / mPerKm * r.DurationHours() * minPerHr
}

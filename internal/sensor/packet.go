package sensor

import (
	"errors"
	"fmt"

	"fittrack/internal/workout"
)

// ErrUnknownActivity is returned when a packet carries a tag outside the
// supported set.
var ErrUnknownActivity = errors.New("unknown activity")

// Supported packet tags. The set is closed: tags are matched exactly, with
// no case folding or partial matching.
const (
	TagSwimming = "SWM"
	TagRunning  = "RUN"
	TagWalking  = "WLK"
)

// Packet is one raw sensor reading: an activity tag plus the numeric tuple
// whose length and field order depend on the tag.
//
//	SWM: action, duration(h), weight(kg), pool length(m), lap count
//	RUN: action, duration(h), weight(kg)
//	WLK: action, duration(h), weight(kg), height(cm)
type Packet struct {
	Tag    string    `json:"tag"`
	Values []float64 `json:"values"`
}

// Resolve maps a packet to its workout variant, unpacking the value tuple
// into the variant's constructor. Counts (actions, laps) arrive as floats on
// the wire and are truncated to integers here; the constructors enforce the
// measurement bounds.
func Resolve(p Packet) (workout.Workout, error) {
	switch p.Tag {
	case TagSwimming:
		if len(p.Values) != 5 {
			return nil, fmt.Errorf("tag %s: want 5 values, got %d", p.Tag, len(p.Values))
		}
		return workout.NewSwimming(int(p.Values[0]), p.Values[1], p.Values[2], p.Values[3], int(p.Values[4]))
	case TagRunning:
		if len(p.Values) != 3 {
			return nil, fmt.Errorf("tag %s: want 3 values, got %d", p.Tag, len(p.Values))
		}
		return workout.NewRunning(int(p.Values[0]), p.Values[1], p.Values[2])
	case TagWalking:
		if len(p.Values) != 4 {
			return nil, fmt.Errorf("tag %s: want 4 values, got %d", p.Tag, len(p.Values))
		}
		return workout.NewSportsWalking(int(p.Values[0]), p.Values[1], p.Values[2], p.Values[3])
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, p.Tag)
	}
}

package sensor

import (
	"errors"
	"fmt"
	"math"

	"github.com/briangreenhill/ran/internal/training"
	"github.com/tkrajina/gpxgo/gpx"
)

var (
	ErrEmptyTrack       = errors.New("gpx track has no moving data")
	ErrUnsupportedTrack = errors.New("gpx tracks can only be imported as running or walking")
)

// FromGPX turns a recorded GPX track into a running or walking package.
// Steps are estimated from the moving distance and the standard step length,
// duration is the moving time. extra is appended after the weight (height for walking).
func FromGPX(raw []byte, kind training.Kind, weight float64, extra ...float64) (Package, error) {
	if kind != training.KindRunning && kind != training.KindWalking {
		return Package{}, fmt.Errorf("%w: %s", ErrUnsupportedTrack, kind)
	}

	g, err := gpx.ParseBytes(raw)
	if err != nil {
		return Package{}, fmt.Errorf("parsing gpx: %w", err)
	}

	moving := g.MovingData()
	if moving.MovingTime <= 0 || moving.MovingDistance <= 0 {
		return Package{}, ErrEmptyTrack
	}

	steps := math.Round(moving.MovingDistance / training.LenStep)
	hours := moving.MovingTime / 3600

	data := append([]float64{steps, hours, weight}, extra...)
	return Package{Code: string(kind), Data: data}, nil
}

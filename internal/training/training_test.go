package training

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPackageRunning(t *testing.T) {
	tr, err := ReadPackage("RUN", []float64{15000, 1, 75})
	require.NoError(t, err)

	assert.Equal(t, "Running", tr.Name())
	assert.InDelta(t, 9.75, tr.Distance(), 1e-9)
	assert.InDelta(t, 9.75, tr.MeanSpeed(), 1e-9)
	assert.InDelta(t, 797.805, tr.SpentCalories(), 1e-9)
	assert.Equal(t,
		"Workout type: Running; Duration: 1.000 h; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories burned: 797.805.",
		tr.Info().Message())
}

func TestReadPackageWalking(t *testing.T) {
	tr, err := ReadPackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)

	speed := 9000 * 0.65 / 1000 / 1.0
	expected := (0.035*75 + (math.Pow(speed*0.278, 2)/1.8)*0.029*75) * 1 * 60

	assert.Equal(t, "SportsWalking", tr.Name())
	assert.InDelta(t, 5.85, tr.Distance(), 1e-9)
	assert.InDelta(t, expected, tr.SpentCalories(), 1e-9)
	assert.InDelta(t, 349.252, tr.SpentCalories(), 0.0005)
	assert.Contains(t, tr.Info().Message(), "Calories burned: 349.252.")
}

func TestReadPackageSwimming(t *testing.T) {
	tr, err := ReadPackage("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	assert.Equal(t, "Swimming", tr.Name())
	assert.InDelta(t, 0.9936, tr.Distance(), 1e-9)
	assert.InDelta(t, 1.0, tr.MeanSpeed(), 1e-9)
	assert.InDelta(t, 336.0, tr.SpentCalories(), 1e-9)
	assert.Equal(t,
		"Workout type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories burned: 336.000.",
		tr.Info().Message())
}

func TestRunningDistanceAndSpeed(t *testing.T) {
	cases := []struct {
		action   int
		duration float64
		weight   float64
	}{
		{0, 0.5, 60},
		{1234, 0.25, 70},
		{20000, 2.5, 90},
	}

	for _, c := range cases {
		r, err := NewRunning(c.action, c.duration, c.weight)
		require.NoError(t, err)

		distance := float64(c.action) * 0.65 / 1000
		assert.Equal(t, distance, r.Distance())
		assert.Equal(t, distance/c.duration, r.MeanSpeed())
	}
}

func TestSwimmingSpeedIgnoresStrokes(t *testing.T) {
	a, err := NewSwimming(100, 0.5, 70, 50, 20)
	require.NoError(t, err)
	b, err := NewSwimming(5000, 0.5, 70, 50, 20)
	require.NoError(t, err)

	assert.Equal(t, 50.0*20/1000/0.5, a.MeanSpeed())
	assert.Equal(t, a.MeanSpeed(), b.MeanSpeed())
	assert.NotEqual(t, a.Distance(), b.Distance())
}

func TestReadPackageUnknownType(t *testing.T) {
	tr, err := ReadPackage("XYZ", []float64{1, 2, 3})
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, ErrUnknownWorkoutType)
}

func TestReadPackageArity(t *testing.T) {
	tr, err := ReadPackage("WLK", []float64{9000, 1, 75})
	assert.Nil(t, tr)
	require.ErrorIs(t, err, ErrArityMismatch)

	var arityErr *ArityError
	require.True(t, errors.As(err, &arityErr))
	assert.Equal(t, "WLK", arityErr.Code)
	assert.Equal(t, 4, arityErr.Want)
	assert.Equal(t, 3, arityErr.Got)
}

func TestReadPackageInvalidReadings(t *testing.T) {
	cases := map[string]struct {
		code string
		data []float64
		want error
	}{
		"zero duration":     {"RUN", []float64{1000, 0, 70}, ErrInvalidDuration},
		"negative duration": {"SWM", []float64{100, -1, 70, 25, 4}, ErrInvalidDuration},
		"zero height":       {"WLK", []float64{1000, 1, 70, 0}, ErrInvalidHeight},
		"fractional action": {"RUN", []float64{10.5, 1, 70}, ErrNotInteger},
		"fractional laps":   {"SWM", []float64{100, 1, 70, 25, 2.5}, ErrNotInteger},
		"NaN duration":      {"RUN", []float64{1000, math.NaN(), 70}, ErrInvalidDuration},
		"infinite action":   {"WLK", []float64{math.Inf(1), 1, 70, 170}, ErrNotInteger},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			tr, err := ReadPackage(c.code, c.data)
			assert.Nil(t, tr)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("SWM")
	require.NoError(t, err)
	assert.Equal(t, KindSwimming, k)

	_, err = ParseKind("run")
	assert.ErrorIs(t, err, ErrUnknownWorkoutType)
}

type cycling struct {
	Workout
}

func (c *cycling) Name() string { return "Cycling" }
func (c *cycling) Distance() float64 { return float64(c.Action) / mInKm }
func (c *cycling) MeanSpeed() float64 { return c.Distance() / c.Duration }
func (c *cycling) SpentCalories() float64 { return 8 * c.Weight * c.Duration }
func (c *cycling) Info() InfoMessage { return info(c, c.Duration) }

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	build := func(data []float64) (Training, error) {
		return &cycling{Workout{Action: int(data[0]), Duration: data[1], Weight: data[2]}}, nil
	}

	require.NoError(t, r.Register("CYC", 3, build))
	assert.Equal(t, []string{"CYC", "RUN", "SWM", "WLK"}, r.Codes())

	tr, err := r.Read("CYC", []float64{30000, 1.5, 80})
	require.NoError(t, err)
	assert.Equal(t, "Workout type: Cycling; Duration: 1.500 h; Distance: 30.000 km; Avg speed: 20.000 km/h; Calories burned: 960.000.",
		tr.Info().Message())

	assert.ErrorIs(t, r.Register("CYC", 3, build), ErrDuplicateWorkoutType)
	assert.ErrorIs(t, r.Register("RUN", 3, build), ErrDuplicateWorkoutType)
	assert.Error(t, r.Register("", 3, build))

	_, err = ReadPackage("CYC", []float64{30000, 1.5, 80})
	assert.ErrorIs(t, err, ErrUnknownWorkoutType)
}

func TestRegistryRejectsNilTraining(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("NIL", 1, func(data []float64) (Training, error) {
		return nil, nil
	}))

	tr, err := r.Read("NIL", []float64{1})
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, ErrNoTraining)
}

func TestRegistryDispatchesEveryKind(t *testing.T) {
	r := NewRegistry()
	for _, k := range []Kind{KindRunning, KindWalking, KindSwimming} {
		b, err := r.lookup(string(k))
		require.NoError(t, err, k)
		assert.NotNil(t, b.build, k)
	}

	_, err := r.lookup("SWIM")
	assert.ErrorIs(t, err, ErrUnknownWorkoutType)
}

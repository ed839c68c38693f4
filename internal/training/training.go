package training

import (
	"math"
)

const (
	mInKm     = 1000
	minInH    = 60
	cmInM     = 100
	kmhInMsec = 0.278

	// LenStep is the distance in metres covered by one running or walking step.
	LenStep         = 0.65
	swimmingLenStep = 1.38

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	walkingSpeedPower               = 2

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Training is a workout whose results can be summarised.
type Training interface {
	Name() string
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	Info() InfoMessage
}

// Workout holds the readings shared by every kind of training.
// It has no calorie formula of its own.
type Workout struct {
	Action   int
	Duration float64
	Weight   float64
}

func (w Workout) distance(stepLength float64) float64 {
	return float64(w.Action) * stepLength / mInKm
}

func (w Workout) meanSpeed(distance float64) float64 {
	return distance / w.Duration
}

func info(t Training, duration float64) InfoMessage {
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

type Running struct {
	Workout
}

func NewRunning(action int, duration, weight float64) (*Running, error) {
	if err := checkDuration(duration); err != nil {
		return nil, err
	}
	return &Running{Workout{Action: action, Duration: duration, Weight: weight}}, nil
}

func (r *Running) Name() string { return "Running" }

func (r *Running) Distance() float64 { return r.distance(LenStep) }

func (r *Running) MeanSpeed() float64 { return r.meanSpeed(r.Distance()) }

func (r *Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.Weight / mInKm * r.Duration * minInH
}

func (r *Running) Info() InfoMessage { return info(r, r.Duration) }

// SportsWalking adds the walker's height in centimetres.
type SportsWalking struct {
	Workout
	Height float64
}

func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	if err := checkDuration(duration); err != nil {
		return nil, err
	}
	if height <= 0 || math.IsNaN(height) {
		return nil, ErrInvalidHeight
	}
	return &SportsWalking{
		Workout: Workout{Action: action, Duration: duration, Weight: weight},
		Height:  height,
	}, nil
}

func (s *SportsWalking) Name() string { return "SportsWalking" }

func (s *SportsWalking) Distance() float64 { return s.distance(LenStep) }

func (s *SportsWalking) MeanSpeed() float64 { return s.meanSpeed(s.Distance()) }

// SpentCalories converts the mean speed to m/s and the height to metres.
func (s *SportsWalking) SpentCalories() float64 {
	speedMsec := s.MeanSpeed() * kmhInMsec
	heightM := s.Height / cmInM
	return (walkingCaloriesWeightMultiplier*s.Weight +
		(math.Pow(speedMsec, walkingSpeedPower)/heightM)*walkingSpeedHeightMultiplier*s.Weight) *
		s.Duration * minInH
}

func (s *SportsWalking) Info() InfoMessage { return info(s, s.Duration) }

// Swimming measures speed from pool geometry rather than stroke count.
type Swimming struct {
	Workout
	LengthPool float64
	CountPool  int
}

func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (*Swimming, error) {
	if err := checkDuration(duration); err != nil {
		return nil, err
	}
	return &Swimming{
		Workout:    Workout{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}, nil
}

func (s *Swimming) Name() string { return "Swimming" }

func (s *Swimming) Distance() float64 { return s.distance(swimmingLenStep) }

func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.Weight * s.Duration
}

func (s *Swimming) Info() InfoMessage { return info(s, s.Duration) }

func checkDuration(duration float64) error {
	if duration <= 0 || math.IsNaN(duration) {
		return ErrInvalidDuration
	}
	return nil
}

package training

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Kind is one of the built-in workout types.
type Kind string

const (
	KindRunning  Kind = "RUN"
	KindWalking  Kind = "WLK"
	KindSwimming Kind = "SWM"
)

// ParseKind validates a raw workout code against the built-in kinds.
func ParseKind(code string) (Kind, error) {
	switch k := Kind(code); k {
	case KindRunning, KindWalking, KindSwimming:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
}

// BuildFunc constructs a training from readings already checked for arity.
type BuildFunc func(data []float64) (Training, error)

type builder struct {
	arity int
	build BuildFunc
}

// Registry maps workout codes to their constructors. Built-in kinds are
// dispatched through ParseKind; codes added with Register live alongside them.
type Registry struct {
	mu     sync.RWMutex
	kinds  map[Kind]builder
	custom map[string]builder
}

// NewRegistry returns a registry holding the running, walking and swimming kinds.
func NewRegistry() *Registry {
	return &Registry{
		kinds: map[Kind]builder{
			KindRunning:  {arity: 3, build: buildRunning},
			KindWalking:  {arity: 4, build: buildWalking},
			KindSwimming: {arity: 5, build: buildSwimming},
		},
		custom: make(map[string]builder),
	}
}

func (r *Registry) Register(code string, arity int, build BuildFunc) error {
	if code == "" || build == nil {
		return fmt.Errorf("register workout type %q: code and builder are required", code)
	}
	if _, err := ParseKind(code); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateWorkoutType, code)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.custom[code]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateWorkoutType, code)
	}
	r.custom[code] = builder{arity: arity, build: build}
	return nil
}

func (r *Registry) lookup(code string) (builder, error) {
	k, err := ParseKind(code)
	if err == nil {
		return r.kinds[k], nil
	}
	r.mu.RLock()
	b, ok := r.custom[code]
	r.mu.RUnlock()
	if !ok {
		return builder{}, err
	}
	return b, nil
}

// Read builds the training for code, binding data positionally.
func (r *Registry) Read(code string, data []float64) (Training, error) {
	b, err := r.lookup(code)
	if err != nil {
		return nil, err
	}
	if len(data) != b.arity {
		return nil, &ArityError{Code: code, Want: b.arity, Got: len(data)}
	}
	t, err := b.build(data)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", code, err)
	}
	if t == nil {
		return nil, fmt.Errorf("build %s: %w", code, ErrNoTraining)
	}
	return t, nil
}

func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.kinds)+len(r.custom))
	for k := range r.kinds {
		codes = append(codes, string(k))
	}
	for code := range r.custom {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

var defaultRegistry = NewRegistry()

// Default returns the registry used by ReadPackage.
func Default() *Registry { return defaultRegistry }

// Register adds a workout kind to the default registry.
func Register(code string, arity int, build BuildFunc) error {
	return defaultRegistry.Register(code, arity, build)
}

// ReadPackage builds a training from a sensor package using the default registry.
func ReadPackage(code string, data []float64) (Training, error) {
	return defaultRegistry.Read(code, data)
}

func buildRunning(data []float64) (Training, error) {
	action, err := wholeNumber("action", data[0])
	if err != nil {
		return nil, err
	}
	r, err := NewRunning(action, data[1], data[2])
	if err != nil {
		return nil, err
	}
	return r, nil
}

func buildWalking(data []float64) (Training, error) {
	action, err := wholeNumber("action", data[0])
	if err != nil {
		return nil, err
	}
	w, err := NewSportsWalking(action, data[1], data[2], data[3])
	if err != nil {
		return nil, err
	}
	return w, nil
}

func buildSwimming(data []float64) (Training, error) {
	action, err := wholeNumber("action", data[0])
	if err != nil {
		return nil, err
	}
	count, err := wholeNumber("count_pool", data[4])
	if err != nil {
		return nil, err
	}
	s, err := NewSwimming(action, data[1], data[2], data[3], count)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func wholeNumber(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%s %v: %w", field, v, ErrNotInteger)
	}
	return int(v), nil
}

package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// MaxIterations bounds a run; every generation is kept in memory
const MaxIterations = 1 << 20

// preallocLimit caps the up-front capacity of the returned sequence
const preallocLimit = 1024

var (
	// ErrNegativeIterations is returned when asked to run a negative number of generations
	ErrNegativeIterations = errors.New("iteration count must not be negative")
	// ErrTooManyIterations is returned when asked to run more than MaxIterations generations
	ErrTooManyIterations = errors.New("iteration count exceeds limit")
)

// Iterate returns iterations+1 states: the initial state followed by each
// successive generation
func Iterate(initial State, iterations int) ([]State, error) {
	return iterate(initial, iterations, func(s State) (State, error) {
		return CalculateNext(s), nil
	})
}

// IterateWith is Iterate using the stepping strategy selected by config
func IterateWith(initial State, iterations int, config utils.Config) ([]State, error) {
	return iterate(initial, iterations, func(s State) (State, error) {
		return NextGeneration(s, config)
	})
}

func iterate(initial State, iterations int, step func(State) (State, error)) ([]State, error) {
	if iterations < 0 {
		return nil, errors.Wrapf(ErrNegativeIterations, "[Iterate] got %d", iterations)
	}
	if iterations > MaxIterations {
		return nil, errors.Wrapf(ErrTooManyIterations, "[Iterate] got %d, limit %d", iterations, MaxIterations)
	}

	states := make([]State, 0, min(iterations, preallocLimit)+1)
	states = append(states, initial)
	for i := 0; i < iterations; i++ {
		next, err := step(states[i])
		if err != nil {
			return nil, errors.Wrapf(err, "[Iterate] generation %d", i+1)
		}
		states = append(states, next)
	}
	return states, nil
}

// Cycle describes a generation that repeats an earlier one
type Cycle struct {
	// Start is the first generation of the repeating run
	Start int
	// Period is the distance between two equal generations; 1 means a still life
	Period int
}

// DetectCycle finds the first generation equal to an earlier one.
// It returns false when every generation in states is distinct.
func DetectCycle(states []State) (Cycle, bool) {
	seen := make(map[string]int, len(states))
	for gen, s := range states {
		hash := s.Hash()
		if first, ok := seen[hash]; ok && s.Equal(states[first]) {
			return Cycle{Start: first, Period: gen - first}, true
		}
		seen[hash] = gen
	}
	return Cycle{}, false
}

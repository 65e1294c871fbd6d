package model

import (
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrMalformedPattern is returned for pattern files with unusable entries
var ErrMalformedPattern = errors.New("malformed pattern")

// PatternTable maps pattern names to starting states.
// It is built once at startup and never modified; Merge returns a new table.
type PatternTable struct {
	patterns map[string]State
}

// patternFile is the on-disk layout of a pattern file:
//
//	patterns:
//	  blinker: [[0, 1], [1, 1], [2, 1]]
type patternFile struct {
	Patterns map[string][][]int `yaml:"patterns"`
}

// NewPatternTable creates a table from named cell lists
func NewPatternTable(patterns map[string][]Cell) PatternTable {
	t := PatternTable{patterns: make(map[string]State, len(patterns))}
	for name, cells := range patterns {
		t.patterns[name] = NewState(cells...)
	}
	return t
}

// DefaultPatterns returns the built-in starting patterns
func DefaultPatterns() PatternTable {
	return NewPatternTable(map[string][]Cell{
		"rpentomino": {
			{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4},
		},
		// a glider heading for a still block
		"glider": {
			{X: -2, Y: -2}, {X: -1, Y: -2}, {X: -2, Y: -1}, {X: -1, Y: -1},
			{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3},
		},
		"square": {
			{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2},
		},
		"blinker": {
			{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		},
	})
}

// LoadPatternFile reads named patterns from a YAML file
func LoadPatternFile(filename string) (PatternTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return PatternTable{}, errors.Wrapf(err, "[LoadPatternFile] failed to read file: %+v", filename)
	}

	var file patternFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return PatternTable{}, errors.Wrapf(err, "[LoadPatternFile] failed to unmarshal data from file: %+v", filename)
	}

	patterns := make(map[string][]Cell, len(file.Patterns))
	for name, pairs := range file.Patterns {
		if name == "" {
			return PatternTable{}, errors.Wrapf(ErrMalformedPattern, "[LoadPatternFile] empty name in %+v", filename)
		}
		cells := make([]Cell, 0, len(pairs))
		for i, pair := range pairs {
			if len(pair) != 2 {
				return PatternTable{}, errors.Wrapf(ErrMalformedPattern,
					"[LoadPatternFile] %s: cell %d has %d coordinates, want 2", name, i, len(pair))
			}
			cells = append(cells, Cell{X: pair[0], Y: pair[1]})
		}
		patterns[name] = cells
	}
	return NewPatternTable(patterns), nil
}

// Get returns the starting state for name
func (t PatternTable) Get(name string) (State, bool) {
	s, ok := t.patterns[name]
	return s, ok
}

// Names returns the pattern names in alphabetical order
func (t PatternTable) Names() []string {
	names := make([]string, 0, len(t.patterns))
	for name := range t.patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of patterns
func (t PatternTable) Len() int {
	return len(t.patterns)
}

// Merge returns a new table holding t's patterns overridden by other's
func (t PatternTable) Merge(other PatternTable) PatternTable {
	merged := PatternTable{patterns: make(map[string]State, len(t.patterns)+len(other.patterns))}
	for name, s := range t.patterns {
		merged.patterns[name] = s
	}
	for name, s := range other.patterns {
		merged.patterns[name] = s
	}
	return merged
}

package populate

import "errors"

// Strategy selects how an initial population is generated.
type Strategy int

const (
	// Random draws uniform centres, relaxes them once and clamps them.
	Random Strategy = iota

	// Heuristic uses shuffled skyline row packing and clamps the result.
	Heuristic
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case Random:
		return "random"
	case Heuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name produced by String back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "random":
		return Random, nil
	case "heuristic":
		return Heuristic, nil
	default:
		return 0, ErrUnknownStrategy
	}
}

var (
	// ErrUnknownStrategy is returned for a Strategy outside {Random, Heuristic}.
	ErrUnknownStrategy = errors.New("populate: unknown init strategy")

	// ErrBadSize is returned for a negative population size.
	ErrBadSize = errors.New("populate: negative population size")
)

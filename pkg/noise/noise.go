// Package noise provides the smooth 2D noise functions the wave field is built from.
package noise

import (
	"errors"
	"fmt"

	"github.com/ojrac/opensimplex-go"
)

// Source is a continuous 2D noise function with output in [-1, 1].
// opensimplex.Noise satisfies it directly.
type Source interface {
	Eval2(x, y float64) float64
}

// Source kinds accepted by New.
const (
	KindSimplex     = "simplex"
	KindOpenSimplex = "opensimplex"
)

// ErrUnknownSource is returned by New for an unrecognized kind.
var ErrUnknownSource = errors.New("unknown noise source")

// New returns the source named by kind. The seed only affects opensimplex;
// simplex is the fixed-permutation function the GPU shader also evaluates.
func New(kind string, seed int64) (Source, error) {
	switch kind {
	case "", KindSimplex:
		return Simplex, nil
	case KindOpenSimplex:
		return NewOpenSimplex(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}

// NewOpenSimplex returns seeded OpenSimplex noise in [-1, 1].
// It has no GPU counterpart and is meant for offline baking.
func NewOpenSimplex(seed int64) Source {
	return opensimplex.New(seed)
}

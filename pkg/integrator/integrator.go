package integrator

import (
	"errors"
	"fmt"

	"github.com/df07/go-vcm/pkg/renderer"
	"github.com/df07/go-vcm/pkg/scene"
)

// ErrUnsupportedAlgorithm is returned for algorithms that have a name but no implementation
var ErrUnsupportedAlgorithm = errors.New("integrator: algorithm not implemented")

// Algorithm identifies a light transport algorithm
type Algorithm int

const (
	EyeLight Algorithm = iota
	PathTracing
	LightTracing
	ProgressivePhotonMapping
	BidirectionalPhotonMapping
	BidirectionalPathTracing
	VertexConnectionMerging
)

var algorithmNames = [...]struct{ name, acronym string }{
	EyeLight:                   {"eye light", "el"},
	PathTracing:                {"path tracing", "pt"},
	LightTracing:               {"light tracing", "lt"},
	ProgressivePhotonMapping:   {"progressive photon mapping", "ppm"},
	BidirectionalPhotonMapping: {"bidirectional photon mapping", "bpm"},
	BidirectionalPathTracing:   {"bidirectional path tracing", "bpt"},
	VertexConnectionMerging:    {"vertex connection and merging", "vcm"},
}

// Algorithms lists every known algorithm in order
func Algorithms() []Algorithm {
	all := make([]Algorithm, len(algorithmNames))
	for i := range all {
		all[i] = Algorithm(i)
	}
	return all
}

// Name returns the human readable name
func (a Algorithm) Name() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
	return algorithmNames[a].name
}

// Acronym returns the short name used on the command line and in file names
func (a Algorithm) Acronym() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("alg%d", int(a))
	}
	return algorithmNames[a].acronym
}

func (a Algorithm) String() string {
	return a.Name()
}

// ParseAlgorithm looks an algorithm up by acronym
func ParseAlgorithm(acronym string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if a.Acronym() == acronym {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", acronym)
}

// NewFactory returns the renderer factory for an algorithm
func NewFactory(a Algorithm) (renderer.Factory, error) {
	switch a {
	case EyeLight:
		return func(sc *scene.Scene, seed uint64) renderer.Renderer {
			return NewEyeLight(sc, seed)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a.Name())
	}
}

package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/facefilter"
)

// Scene errors.
var (
	// ErrInvalidScene is returned for scene files that fail validation.
	ErrInvalidScene = errors.New("cli: invalid scene")
)

// Scene describes one compositing job: a frame, landmark sets for each
// detected face, and an ordered list of filters to apply.
type Scene struct {
	Frame  string `toml:"frame"`
	Output string `toml:"output"`
	Flip   bool   `toml:"flip"`

	Faces   []Face         `toml:"face"`
	Filters []FilterConfig `toml:"filter"`
}

// Face holds one landmark set as [x, y] pairs in frame-pixel coordinates,
// indexed by the MediaPipe face mesh convention. Use [-1, -1] for
// landmarks the detector could not resolve.
type Face struct {
	Landmarks [][]float64 `toml:"landmarks"`
}

// FilterConfig selects a filter variant, its asset directory, the initial
// asset index, and optional parameter overrides.
type FilterConfig struct {
	Kind   string        `toml:"kind"`
	Assets string        `toml:"assets"`
	Index  int           `toml:"index"`
	Params *ParamsConfig `toml:"params"`
}

// ParamsConfig mirrors facefilter.FilterParams for TOML overrides.
type ParamsConfig struct {
	MinDistance  float64 `toml:"min_distance"`
	MaxDistance  float64 `toml:"max_distance"`
	WidthFactor  float64 `toml:"width_factor"`
	HeightFactor float64 `toml:"height_factor"`
	MinWidth     int     `toml:"min_width"`
	MaxWidth     int     `toml:"max_width"`
	MinHeight    int     `toml:"min_height"`
	MaxHeight    int     `toml:"max_height"`
}

// policies maps scene filter kinds to library policies. The "face" kind
// doubles as the System mask entry.
var policies = map[string]facefilter.Policy{
	"hat":     facefilter.Hat{},
	"glasses": facefilter.Glasses{},
	"nose":    facefilter.Nose{},
	"mouth":   facefilter.Mouth{},
	"face":    facefilter.FaceMask{},
}

// LoadScene reads and validates a TOML scene file.
func LoadScene(path string) (*Scene, error) {
	var s Scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("cli: decode scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) validate() error {
	if s.Frame == "" {
		return fmt.Errorf("%w: missing frame path", ErrInvalidScene)
	}
	if s.Output == "" {
		return fmt.Errorf("%w: missing output path", ErrInvalidScene)
	}
	if len(s.Filters) == 0 {
		return fmt.Errorf("%w: no filters", ErrInvalidScene)
	}
	seen := make(map[string]bool, len(s.Filters))
	for i, fc := range s.Filters {
		if _, ok := policies[fc.Kind]; !ok {
			return fmt.Errorf("%w: filter %d: unknown kind %q", ErrInvalidScene, i, fc.Kind)
		}
		if seen[fc.Kind] {
			return fmt.Errorf("%w: duplicate filter kind %q", ErrInvalidScene, fc.Kind)
		}
		seen[fc.Kind] = true
		if fc.Assets == "" {
			return fmt.Errorf("%w: filter %q: missing assets directory", ErrInvalidScene, fc.Kind)
		}
	}
	for i, face := range s.Faces {
		for j, lm := range face.Landmarks {
			if len(lm) != 2 {
				return fmt.Errorf("%w: face %d landmark %d: want [x, y], got %d values", ErrInvalidScene, i, j, len(lm))
			}
		}
	}
	return nil
}

// BuildSystem constructs a filter system from the scene's filter list.
// Asset directories are loaded here; an empty directory or an invalid
// parameter override fails loudly.
func (s *Scene) BuildSystem() (*facefilter.System, error) {
	sys := facefilter.NewSystem()
	for _, fc := range s.Filters {
		policy := policies[fc.Kind]
		if fc.Params != nil {
			var err error
			policy, err = facefilter.WithParams(policy, facefilter.FilterParams{
				MinDistance:  fc.Params.MinDistance,
				MaxDistance:  fc.Params.MaxDistance,
				WidthFactor:  fc.Params.WidthFactor,
				HeightFactor: fc.Params.HeightFactor,
				MinWidth:     fc.Params.MinWidth,
				MaxWidth:     fc.Params.MaxWidth,
				MinHeight:    fc.Params.MinHeight,
				MaxHeight:    fc.Params.MaxHeight,
			})
			if err != nil {
				return nil, fmt.Errorf("cli: filter %q: %w", fc.Kind, err)
			}
		}
		f, err := facefilter.New(fc.Assets, policy)
		if err != nil {
			return nil, fmt.Errorf("cli: filter %q: %w", fc.Kind, err)
		}
		f.SetCurrentIndex(fc.Index)
		sys.Add(fc.Kind, f)
	}
	return sys, nil
}

// Points converts a face's landmark pairs into library points.
func (f Face) Points() []facefilter.Point {
	pts := make([]facefilter.Point, len(f.Landmarks))
	for i, lm := range f.Landmarks {
		pts[i] = facefilter.Pt(lm[0], lm[1])
	}
	return pts
}

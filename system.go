package facefilter

// MaskFilterName is the System entry applied exclusively while mask mode
// is active.
const MaskFilterName = "face"

// System manages a named, ordered set of filters and applies them to one
// frame and landmark set per call. It mirrors the asset-cycling data model:
// each filter keeps its own cursor, and Cycle steps it with wrap-around.
//
// In mask mode only the MaskFilterName entry is applied; the remaining
// filters stay registered and keep their cursors.
//
// System performs no internal locking.
type System struct {
	order    []string
	filters  map[string]*FaceFilter
	maskMode bool
}

// NewSystem creates an empty filter system.
func NewSystem() *System {
	return &System{filters: make(map[string]*FaceFilter)}
}

// Add registers a filter under name, keeping insertion order for Apply.
// Re-adding an existing name replaces the filter in its original slot.
func (s *System) Add(name string, f *FaceFilter) {
	if _, ok := s.filters[name]; !ok {
		s.order = append(s.order, name)
	}
	s.filters[name] = f
}

// Get returns the filter registered under name, or nil.
func (s *System) Get(name string) *FaceFilter {
	return s.filters[name]
}

// Names returns the registered filter names in insertion order.
func (s *System) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Cycle steps the named filter's asset cursor by delta, wrapping in either
// direction. Unknown names are ignored.
func (s *System) Cycle(name string, delta int) {
	if f := s.filters[name]; f != nil {
		f.SetCurrentIndex(f.CurrentIndex() + delta)
	}
}

// SetMaskMode toggles mask mode.
func (s *System) SetMaskMode(on bool) { s.maskMode = on }

// MaskMode reports whether mask mode is active.
func (s *System) MaskMode() bool { return s.maskMode }

// Apply runs the registered filters over one frame and landmark set and
// returns the frame. In mask mode only the MaskFilterName entry runs.
func (s *System) Apply(frame *Image, landmarks []Point, frameSize Size) *Image {
	if s.maskMode {
		if f := s.filters[MaskFilterName]; f != nil {
			frame = f.ApplyFilter(frame, landmarks, frameSize)
		}
		return frame
	}
	for _, name := range s.order {
		if name == MaskFilterName {
			continue
		}
		frame = s.filters[name].ApplyFilter(frame, landmarks, frameSize)
	}
	return frame
}

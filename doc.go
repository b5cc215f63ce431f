// Package facefilter overlays positioned, rotated, alpha-blended image
// assets (hats, glasses, masks) onto video frames, anchored to facial
// landmark points.
//
// # Quick Start
//
//	import "github.com/gogpu/facefilter"
//
//	hat, err := facefilter.NewHat("imgs/hats")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Per frame: landmarks come from an external detector.
//	frame = hat.ApplyFilter(frame, landmarks, facefilter.Size{Width: 640, Height: 480})
//
// # Pipeline
//
// Each filter anchors to a pair of landmark points. Their distance sets the
// asset scale, their angle sets the asset rotation, and a per-variant
// placement policy positions the result before it is alpha-composited onto
// the frame. Detection misses (invalid landmarks, untrusted distances,
// off-frame placements) silently return the frame unchanged; per-frame
// misses are expected in a live stream and never raise errors.
//
// # Landmark Convention
//
// Landmark indices follow the MediaPipe face mesh numbering, in frame-pixel
// coordinates. A point that the detector could not resolve is reported as
// [LandmarkNotDetected].
//
// # Concurrency
//
// A filter instance owns its asset collection and cursor exclusively and
// performs no internal locking. Callers sharing one instance across
// goroutines must serialize access; independently owned instances are safe
// to use concurrently.
package facefilter

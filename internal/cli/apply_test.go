package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/facefilter"
)

// sceneLandmarks renders a TOML landmark array long enough to address the
// MediaPipe mesh indices in points, with all other entries set to the
// not-detected sentinel.
func sceneLandmarks(points map[int]facefilter.Point) string {
	maxIdx := 0
	for i := range points {
		if i > maxIdx {
			maxIdx = i
		}
	}
	var b strings.Builder
	b.WriteString("landmarks = [")
	for i := 0; i <= maxIdx; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		p, ok := points[i]
		if !ok {
			p = facefilter.LandmarkNotDetected
		}
		fmt.Fprintf(&b, "[%.1f, %.1f]", p.X, p.Y)
	}
	b.WriteString("]")
	return b.String()
}

func TestApplyEndToEnd(t *testing.T) {
	dir := t.TempDir()

	framePath := filepath.Join(dir, "frame.png")
	frame, err := facefilter.NewImage(200, 100)
	if err != nil {
		t.Fatal(err)
	}
	frame.Fill(0, 0, 255, 255)
	if err := frame.SavePNG(framePath); err != nil {
		t.Fatal(err)
	}

	assets := writeAssetDir(t)
	outPath := filepath.Join(dir, "out.png")

	// Outer eye corners 100px apart on a horizontal line.
	scene := fmt.Sprintf(`
frame = %q
output = %q

[[face]]
%s

[[filter]]
kind = "glasses"
assets = %q
`, framePath, outPath, sceneLandmarks(map[int]facefilter.Point{
		33:  facefilter.Pt(30, 40),
		263: facefilter.Pt(130, 40),
	}), assets)

	scenePath := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(scenePath, []byte(scene), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := newApplyCmd()
	cmd.SetContext(context.Background())
	if err := runApply(cmd, scenePath, false); err != nil {
		t.Fatalf("runApply: %v", err)
	}

	out, err := facefilter.LoadImage(outPath)
	if err != nil {
		t.Fatalf("load output: %v", err)
	}
	if out.Width() != 200 || out.Height() != 100 {
		t.Fatalf("output size = %dx%d, want 200x100", out.Width(), out.Height())
	}

	// Glasses cover the eye midpoint; the corner stays background.
	if r, _, b, _ := out.GetRGBA(80, 40); r != 255 || b != 0 {
		t.Errorf("midpoint pixel = (R %d, B %d), want asset red", r, b)
	}
	if r, _, b, _ := out.GetRGBA(0, 99); r != 0 || b != 255 {
		t.Errorf("corner pixel = (R %d, B %d), want background blue", r, b)
	}
}

func TestApplyMissingScene(t *testing.T) {
	cmd := newApplyCmd()
	cmd.SetContext(context.Background())
	if err := runApply(cmd, filepath.Join(t.TempDir(), "missing.toml"), false); err == nil {
		t.Error("runApply with missing scene should fail")
	}
}

func TestApplyMaskModeSkipsOtherFilters(t *testing.T) {
	dir := t.TempDir()

	framePath := filepath.Join(dir, "frame.png")
	frame, err := facefilter.NewImage(200, 200)
	if err != nil {
		t.Fatal(err)
	}
	frame.Fill(0, 0, 255, 255)
	if err := frame.SavePNG(framePath); err != nil {
		t.Fatal(err)
	}

	assets := writeAssetDir(t)
	outPath := filepath.Join(dir, "out.png")

	scene := fmt.Sprintf(`
frame = %q
output = %q

[[face]]
%s

[[filter]]
kind = "glasses"
assets = %q
`, framePath, outPath, sceneLandmarks(map[int]facefilter.Point{
		33:  facefilter.Pt(50, 100),
		263: facefilter.Pt(150, 100),
	}), assets)

	scenePath := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(scenePath, []byte(scene), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := newApplyCmd()
	cmd.SetContext(context.Background())
	if err := runApply(cmd, scenePath, true); err != nil {
		t.Fatalf("runApply: %v", err)
	}

	// Mask mode with no "face" filter registered: output equals input.
	out, err := facefilter.LoadImage(outPath)
	if err != nil {
		t.Fatalf("load output: %v", err)
	}
	if r, _, b, _ := out.GetRGBA(100, 100); r != 0 || b != 255 {
		t.Errorf("midpoint pixel = (R %d, B %d), want untouched background", r, b)
	}
}

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/facefilter"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeAssetDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	img, err := facefilter.NewImage(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	img.Fill(255, 0, 0, 255)
	if err := img.SavePNG(filepath.Join(dir, "a.png")); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadScene(t *testing.T) {
	path := writeScene(t, `
frame = "frame.png"
output = "out.png"
flip = true

[[face]]
landmarks = [[10.0, 20.0], [-1.0, -1.0]]

[[filter]]
kind = "hat"
assets = "imgs/hats"
index = 2
`)

	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if s.Frame != "frame.png" || s.Output != "out.png" || !s.Flip {
		t.Errorf("scene header = %+v", s)
	}
	if len(s.Faces) != 1 || len(s.Faces[0].Landmarks) != 2 {
		t.Fatalf("faces = %+v", s.Faces)
	}
	pts := s.Faces[0].Points()
	if pts[0] != facefilter.Pt(10, 20) {
		t.Errorf("landmark 0 = %v, want (10, 20)", pts[0])
	}
	if pts[1] != facefilter.LandmarkNotDetected {
		t.Errorf("landmark 1 = %v, want sentinel", pts[1])
	}
	if len(s.Filters) != 1 || s.Filters[0].Kind != "hat" || s.Filters[0].Index != 2 {
		t.Errorf("filters = %+v", s.Filters)
	}
}

func TestLoadSceneValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing frame", `output = "o.png"` + "\n" + `[[filter]]` + "\n" + `kind = "hat"` + "\n" + `assets = "a"`},
		{"missing output", `frame = "f.png"` + "\n" + `[[filter]]` + "\n" + `kind = "hat"` + "\n" + `assets = "a"`},
		{"no filters", `frame = "f.png"` + "\n" + `output = "o.png"`},
		{"unknown kind", `frame = "f.png"` + "\n" + `output = "o.png"` + "\n" + `[[filter]]` + "\n" + `kind = "beard"` + "\n" + `assets = "a"`},
		{"missing assets", `frame = "f.png"` + "\n" + `output = "o.png"` + "\n" + `[[filter]]` + "\n" + `kind = "hat"`},
		{"duplicate kind", `frame = "f.png"` + "\n" + `output = "o.png"` + "\n" +
			`[[filter]]` + "\n" + `kind = "hat"` + "\n" + `assets = "a"` + "\n" +
			`[[filter]]` + "\n" + `kind = "hat"` + "\n" + `assets = "b"`},
		{"bad landmark arity", `frame = "f.png"` + "\n" + `output = "o.png"` + "\n" +
			`[[face]]` + "\n" + `landmarks = [[1.0, 2.0, 3.0]]` + "\n" +
			`[[filter]]` + "\n" + `kind = "hat"` + "\n" + `assets = "a"`},
	}

	for _, tt := range tests {
		path := writeScene(t, tt.content)
		if _, err := LoadScene(path); !errors.Is(err, ErrInvalidScene) {
			t.Errorf("%s: LoadScene err = %v, want ErrInvalidScene", tt.name, err)
		}
	}
}

func TestBuildSystem(t *testing.T) {
	assets := writeAssetDir(t)
	path := writeScene(t, `
frame = "f.png"
output = "o.png"

[[filter]]
kind = "glasses"
assets = "`+assets+`"
index = 5
`)

	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	sys, err := s.BuildSystem()
	if err != nil {
		t.Fatalf("BuildSystem: %v", err)
	}
	f := sys.Get("glasses")
	if f == nil {
		t.Fatal("glasses filter not registered")
	}
	// Index 5 wraps modulo the single asset.
	if f.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", f.CurrentIndex())
	}
}

func TestBuildSystemEmptyAssetsDir(t *testing.T) {
	path := writeScene(t, `
frame = "f.png"
output = "o.png"

[[filter]]
kind = "hat"
assets = "`+t.TempDir()+`"
`)

	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if _, err := s.BuildSystem(); !errors.Is(err, facefilter.ErrNoAssets) {
		t.Errorf("BuildSystem err = %v, want facefilter.ErrNoAssets", err)
	}
}

func TestBuildSystemInvalidParamsOverride(t *testing.T) {
	assets := writeAssetDir(t)
	path := writeScene(t, `
frame = "f.png"
output = "o.png"

[[filter]]
kind = "hat"
assets = "`+assets+`"

[filter.params]
min_distance = 100.0
max_distance = 10.0
width_factor = 1.0
height_factor = 1.0
min_width = 1
max_width = 10
min_height = 1
max_height = 10
`)

	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if _, err := s.BuildSystem(); !errors.Is(err, facefilter.ErrInvalidParams) {
		t.Errorf("BuildSystem err = %v, want facefilter.ErrInvalidParams", err)
	}
}

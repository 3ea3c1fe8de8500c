package scene

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/loaders"
)

func generateAndParse(t *testing.T, cfg Config, rnd core.RandomSource) *loaders.SceneDocument {
	t.Helper()
	doc, err := Generate(cfg, rnd, core.NopLogger{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	parsed, err := loaders.ParseScene(bytes.NewReader(doc))
	if err != nil {
		t.Fatalf("Generated document does not parse: %v", err)
	}
	return parsed
}

func TestGenerate_RecordCounts(t *testing.T) {
	for _, seed := range []int64{1, 42, 987654321} {
		cfg := DefaultConfig()
		cfg.Seed = seed

		src := core.NewTimeSource()
		doc := generateAndParse(t, cfg, src)

		summary := doc.Summary()
		if summary.Total != 228 {
			t.Errorf("Seed %d: expected 228 records, got %d", seed, summary.Total)
		}
		if summary.Cameras != 1 || summary.Lights != 1 || summary.Spheres != 226 {
			t.Errorf("Seed %d: unexpected summary %s", seed, summary)
		}
	}
}

func TestGenerate_Ordering(t *testing.T) {
	doc := generateAndParse(t, DefaultConfig(), core.NewTimeSource())

	objects := doc.Objects
	if objects[0].ObjectType() != core.TypeCamera {
		t.Errorf("Expected camera first, got %s", objects[0].ObjectType())
	}
	if objects[len(objects)-2].ObjectType() != core.TypePointLight {
		t.Errorf("Expected point light second to last, got %s", objects[len(objects)-2].ObjectType())
	}
	if objects[len(objects)-1].ObjectType() != core.TypeSphere {
		t.Errorf("Expected ground sphere last, got %s", objects[len(objects)-1].ObjectType())
	}

	// Row-major: index k holds (k / 15, k % 15)
	for k, s := range doc.Spheres[:225] {
		i, j := float64(k/15), float64(k%15)
		if s.Center.X != i || s.Center.Z != j {
			t.Fatalf("Sphere %d: expected grid (%v, %v), got (%v, %v)", k, i, j, s.Center.X, s.Center.Z)
		}
	}
}

func TestGenerate_GridSphereRanges(t *testing.T) {
	palette := map[core.Color]bool{core.Red: true, core.Green: true, core.Blue: true}
	validHeights := make(map[float64]bool)
	for k := 1; k <= 10; k++ {
		validHeights[float64(k)/2.0] = true
	}

	for _, seed := range []int64{3, 17, 2024} {
		cfg := DefaultConfig()
		cfg.Seed = seed
		doc := generateAndParse(t, cfg, core.NewTimeSource())

		for k, s := range doc.Spheres[:225] {
			if !palette[s.Material.Color] {
				t.Errorf("Sphere %d: color %v not in palette", k, s.Material.Color)
			}
			if s.Radius < 0.2+1.0/400.0 || s.Radius > 0.2+100.0/400.0 {
				t.Errorf("Sphere %d: radius %v outside [0.2025, 0.45]", k, s.Radius)
			}
			if !validHeights[s.Center.Y] {
				t.Errorf("Sphere %d: height %v not in {0.5, 1.0, ..., 5.0}", k, s.Center.Y)
			}
			if s.Material.Albedo != 0.8 {
				t.Errorf("Sphere %d: expected albedo 0.8, got %v", k, s.Material.Albedo)
			}
		}
	}
}

func TestGenerate_GroundAndLight(t *testing.T) {
	doc := generateAndParse(t, DefaultConfig(), core.NewTimeSource())

	ground := doc.Spheres[len(doc.Spheres)-1]
	if ground.Center != core.NewVec3(0, -99, 0) || ground.Radius != 100 {
		t.Errorf("Unexpected ground sphere %+v", ground)
	}
	if ground.Material.Albedo != 0.6 || ground.Material.Color != core.MustColor(0.4, 0.8, 0.1) {
		t.Errorf("Unexpected ground material %+v", ground.Material)
	}

	light := doc.Lights[0]
	if light.Position != core.NewVec3(100, 100, 10) || light.Radius != 40 {
		t.Errorf("Unexpected light %+v", light)
	}
}

func TestGenerate_MinSourceGolden(t *testing.T) {
	got, err := Generate(DefaultConfig(), core.MinSource{}, core.NopLogger{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	want, err := os.ReadFile(filepath.Join("testdata", "min_source.golden.json"))
	if err != nil {
		t.Fatalf("Failed to read golden file: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Generated document differs from golden file (got %d bytes, want %d)", len(got), len(want))
	}

	again, err := Generate(DefaultConfig(), core.MinSource{}, core.NopLogger{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !bytes.Equal(got, again) {
		t.Error("Expected byte-identical output across runs")
	}
}

func TestGenerate_MinSourceValues(t *testing.T) {
	doc := generateAndParse(t, DefaultConfig(), core.MinSource{})
	for k, s := range doc.Spheres[:225] {
		if s.Center.Y != 0.5 || s.Radius != 0.2025 || s.Material.Color != core.Red {
			t.Fatalf("Sphere %d: expected y 0.5, radius 0.2025, red; got %+v", k, s)
		}
	}
}

func TestGenerate_DrawOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 1
	cfg.Seed = 5

	// height step 4, palette index 3 (blue), radius step 40
	src := core.NewSequenceSource(4, 3, 40)
	doc := generateAndParse(t, cfg, src)

	s := doc.Spheres[0]
	if s.Center.Y != 2.0 {
		t.Errorf("Expected height 2.0, got %v", s.Center.Y)
	}
	if s.Material.Color != core.Blue {
		t.Errorf("Expected blue, got %v", s.Material.Color)
	}
	if math.Abs(s.Radius-0.3) > 1e-12 {
		t.Errorf("Expected radius 0.3, got %v", s.Radius)
	}
	if len(src.Seeds) != 1 || src.Seeds[0] != 5 {
		t.Errorf("Expected a single seed of 5, got %v", src.Seeds)
	}
}

func TestGenerate_ClockSeedWhenUnset(t *testing.T) {
	src := core.NewSequenceSource()
	cfg := DefaultConfig()
	cfg.Seed = 0
	if _, err := Generate(cfg, src, nil); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(src.Seeds) != 1 || src.Seeds[0] == 0 {
		t.Errorf("Expected one non-zero clock seed, got %v", src.Seeds)
	}
}

func TestGenerate_EmptyGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 0
	doc := generateAndParse(t, cfg, core.MinSource{})
	if doc.Summary().Total != 3 {
		t.Errorf("Expected camera, light and ground only, got %s", doc.Summary())
	}
}

func TestGenerate_InvalidPaletteAborts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = append(cfg.Palette, ColorConfig{R: 0.5, G: 1.5, B: 0})

	doc, err := Generate(cfg, core.MinSource{}, core.NopLogger{})
	if err == nil {
		t.Fatal("Expected validation error, got none")
	}
	if doc != nil {
		t.Errorf("Expected no output on failure, got %d bytes", len(doc))
	}
	var verr *core.ValidationError
	if !errors.As(err, &verr) || verr.Channel != "green" {
		t.Errorf("Expected green channel validation error, got %v", err)
	}
}

func TestGenerate_InvalidGroundColorAborts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ground.Color = ColorConfig{R: -1, G: 0, B: 0}

	doc, err := Generate(cfg, core.MinSource{}, core.NopLogger{})
	var verr *core.ValidationError
	if !errors.As(err, &verr) || verr.Channel != "red" {
		t.Errorf("Expected red channel validation error, got %v", err)
	}
	if doc != nil {
		t.Error("Expected no output on failure")
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spheres.RadiusMin = 200
	if _, err := Generate(cfg, core.MinSource{}, core.NopLogger{}); err == nil {
		t.Error("Expected error for empty radius range")
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}

func TestGenerate_Logs(t *testing.T) {
	logger := &recordingLogger{}
	cfg := DefaultConfig()
	cfg.Seed = 1
	if _, err := Generate(cfg, core.MinSource{}, logger); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(logger.lines) != 2 {
		t.Errorf("Expected 2 log lines, got %d: %v", len(logger.lines), logger.lines)
	}
}

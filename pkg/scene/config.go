package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/material"
)

// DefaultOutputPath is where the CLI writes the document unless told otherwise
const DefaultOutputPath = "scene.json"

// MaxGridSize bounds the grid size accepted from external input (flags, HTTP)
const MaxGridSize = 100

// Config describes everything the sphere grid generator places
type Config struct {
	Output   string        `yaml:"output" json:"output"`
	GridSize int           `yaml:"grid_size" json:"gridSize"` // Spheres per row and per column
	Seed     int64         `yaml:"seed" json:"seed"`          // 0 = seed from the clock
	Camera   CameraConfig  `yaml:"camera" json:"camera"`
	Palette  []ColorConfig `yaml:"palette" json:"palette"`
	Spheres  SphereConfig  `yaml:"spheres" json:"spheres"`
	Light    LightConfig   `yaml:"light" json:"light"`
	Ground   GroundConfig  `yaml:"ground" json:"ground"`
}

// CameraConfig places the single camera
type CameraConfig struct {
	Fov      float64   `yaml:"fov" json:"fov"`
	Position core.Vec3 `yaml:"position" json:"position"`
	LookAt   core.Vec3 `yaml:"look_at" json:"lookAt"`
}

// ColorConfig is an unvalidated color as read from a config file
type ColorConfig struct {
	R float64 `yaml:"r" json:"r"`
	G float64 `yaml:"g" json:"g"`
	B float64 `yaml:"b" json:"b"`
}

// Color validates the channels
func (c ColorConfig) Color() (core.Color, error) {
	return core.NewColor(c.R, c.G, c.B)
}

// SphereConfig controls the randomized grid spheres.
// Height is HeightMin..HeightMax / HeightDivisor, radius is
// RadiusBase + RadiusMin..RadiusMax / RadiusDivisor.
type SphereConfig struct {
	Albedo        float64 `yaml:"albedo" json:"albedo"`
	ShapeType     string  `yaml:"shape_type" json:"shapeType"`
	HeightMin     int     `yaml:"height_min" json:"heightMin"`
	HeightMax     int     `yaml:"height_max" json:"heightMax"`
	HeightDivisor float64 `yaml:"height_divisor" json:"heightDivisor"`
	RadiusBase    float64 `yaml:"radius_base" json:"radiusBase"`
	RadiusMin     int     `yaml:"radius_min" json:"radiusMin"`
	RadiusMax     int     `yaml:"radius_max" json:"radiusMax"`
	RadiusDivisor float64 `yaml:"radius_divisor" json:"radiusDivisor"`
}

// LightConfig places the point light
type LightConfig struct {
	Position core.Vec3 `yaml:"position" json:"position"`
	Radius   float64   `yaml:"radius" json:"radius"`
}

// GroundConfig places the large sphere under the grid
type GroundConfig struct {
	Position  core.Vec3   `yaml:"position" json:"position"`
	Radius    float64     `yaml:"radius" json:"radius"`
	Albedo    float64     `yaml:"albedo" json:"albedo"`
	ShapeType string      `yaml:"shape_type" json:"shapeType"`
	Color     ColorConfig `yaml:"color" json:"color"`
}

// DefaultConfig returns the classic 15x15 scene
func DefaultConfig() Config {
	return Config{
		Output:   DefaultOutputPath,
		GridSize: 15,
		Seed:     0,
		Camera: CameraConfig{
			Fov:      60,
			Position: core.NewVec3(6.0, 6.4, 2.0),
			LookAt:   core.NewVec3(5.0, 3.0, 7.0),
		},
		Palette: []ColorConfig{
			{R: 1.0, G: 0.0, B: 0.0},
			{R: 0.0, G: 1.0, B: 0.0},
			{R: 0.0, G: 0.0, B: 1.0},
		},
		Spheres: SphereConfig{
			Albedo:        0.8,
			ShapeType:     string(material.KindMetal),
			HeightMin:     1,
			HeightMax:     10,
			HeightDivisor: 2.0,
			RadiusBase:    0.2,
			RadiusMin:     1,
			RadiusMax:     100,
			RadiusDivisor: 400.0,
		},
		Light: LightConfig{
			Position: core.NewVec3(100, 100, 10),
			Radius:   40.0,
		},
		Ground: GroundConfig{
			Position:  core.NewVec3(0.0, -99.0, 0.0),
			Radius:    100.0,
			Albedo:    0.6,
			ShapeType: string(material.KindLambertian),
			Color:     ColorConfig{R: 0.4, G: 0.8, B: 0.1},
		},
	}
}

// LoadConfig reads a YAML config on top of DefaultConfig, so keys missing
// from the file keep their defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the generation parameters. Colors are checked later,
// when generation builds them, so a bad palette aborts generation itself.
func (c Config) Validate() error {
	var errs []error
	if c.GridSize < 0 {
		errs = append(errs, fmt.Errorf("grid_size must not be negative, got %d", c.GridSize))
	}
	if c.GridSize > 0 && len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must contain at least one color"))
	}
	if c.Spheres.HeightMin > c.Spheres.HeightMax {
		errs = append(errs, fmt.Errorf("height range [%d, %d] is empty", c.Spheres.HeightMin, c.Spheres.HeightMax))
	}
	if c.Spheres.RadiusMin > c.Spheres.RadiusMax {
		errs = append(errs, fmt.Errorf("radius range [%d, %d] is empty", c.Spheres.RadiusMin, c.Spheres.RadiusMax))
	}
	if c.Spheres.HeightDivisor == 0 {
		errs = append(errs, errors.New("height_divisor must not be zero"))
	}
	if c.Spheres.RadiusDivisor == 0 {
		errs = append(errs, errors.New("radius_divisor must not be zero"))
	}
	if _, err := material.ParseKind(c.Spheres.ShapeType); err != nil {
		errs = append(errs, fmt.Errorf("spheres: %w", err))
	}
	if _, err := material.ParseKind(c.Ground.ShapeType); err != nil {
		errs = append(errs, fmt.Errorf("ground: %w", err))
	}
	return errors.Join(errs...)
}

// Overrides carries values set explicitly by the caller (flags, query parameters).
// Zero fields mean "not set" and leave the config untouched.
type Overrides struct {
	Output   string
	GridSize int
	Seed     int64
}

// Apply returns a copy of the config with the non-zero overrides merged in
func (c Config) Apply(o Overrides) (Config, error) {
	merged := c
	if err := copier.CopyWithOption(&merged, &o, copier.Option{IgnoreEmpty: true}); err != nil {
		return c, fmt.Errorf("failed to apply overrides: %w", err)
	}
	return merged, nil
}

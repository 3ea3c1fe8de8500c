package scene

import (
	"fmt"
	"time"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/material"
)

// Generate builds the sphere grid document: camera, GridSize x GridSize
// randomized spheres, point light, ground sphere, in that order.
//
// The whole document is assembled in memory. Any error, such as a palette
// color out of range, aborts generation and no bytes are returned.
func Generate(cfg Config, rnd core.RandomSource, logger core.Logger) ([]byte, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	palette := make([]core.Color, 0, len(cfg.Palette))
	for i, c := range cfg.Palette {
		color, err := c.Color()
		if err != nil {
			return nil, fmt.Errorf("palette color %d: %w", i, err)
		}
		palette = append(palette, color)
	}
	groundColor, err := cfg.Ground.Color.Color()
	if err != nil {
		return nil, fmt.Errorf("ground color: %w", err)
	}
	// Validate has already parsed both tags
	sphereKind := material.Kind(cfg.Spheres.ShapeType)
	groundKind := material.Kind(cfg.Ground.ShapeType)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Printf("Seeding from clock: %d\n", seed)
	}
	rnd.Seed(seed)

	builder := NewBuilder()
	add := func(record Record, err error) error {
		if err != nil {
			return err
		}
		builder.Add(record)
		return nil
	}

	if err := add(EmitCamera(cfg.Camera.Fov, cfg.Camera.Position, cfg.Camera.LookAt)); err != nil {
		return nil, err
	}

	n := cfg.GridSize
	logger.Printf("Generating %dx%d sphere grid\n", n, n)
	sc := cfg.Spheres
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Draw order per sphere is height, color, radius
			y := float64(rnd.IntRange(sc.HeightMin, sc.HeightMax)) / sc.HeightDivisor
			color := palette[rnd.IntRange(1, len(palette))-1]
			radius := sc.RadiusBase + float64(rnd.IntRange(sc.RadiusMin, sc.RadiusMax))/sc.RadiusDivisor

			position := core.NewVec3(float64(i), y, float64(j))
			if err := add(EmitSphere(position, radius, sphereKind, sc.Albedo, color)); err != nil {
				return nil, fmt.Errorf("grid sphere (%d, %d): %w", i, j, err)
			}
		}
	}

	if err := add(EmitPointLight(cfg.Light.Position, cfg.Light.Radius)); err != nil {
		return nil, err
	}

	g := cfg.Ground
	if err := add(EmitSphere(g.Position, g.Radius, groundKind, g.Albedo, groundColor)); err != nil {
		return nil, err
	}

	logger.Printf("Generated %d records\n", builder.Len())
	return builder.Document(), nil
}

package geometry

import (
	"encoding/json"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/internal/record"
	"github.com/df07/go-scene-generator/pkg/material"
)

// Sphere represents a sphere shape record.
// Radius is not range checked; a negative radius is written as given.
type Sphere struct {
	record.Marker
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// ObjectType implements core.Object
func (s Sphere) ObjectType() string { return core.TypeSphere }

// SphereJSON is the shared layout of sphere and point light records
type SphereJSON struct {
	Type     string            `json:"type"`
	Pos      core.Vec3         `json:"pos"`
	Radius   float64           `json:"radius"`
	Material material.Material `json:"material"`
}

// MarshalJSON writes {"type":"sphere","pos":..,"radius":..,"material":..}
func (s Sphere) MarshalJSON() ([]byte, error) {
	return json.Marshal(SphereJSON{
		Type:     core.TypeSphere,
		Pos:      s.Center,
		Radius:   s.Radius,
		Material: s.Material,
	})
}

// UnmarshalJSON reads a sphere record; the type tag is checked by the caller
func (s *Sphere) UnmarshalJSON(data []byte) error {
	var raw SphereJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NewSphere(raw.Pos, raw.Radius, raw.Material)
	return nil
}

package lights

import (
	"encoding/json"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/internal/record"
	"github.com/df07/go-scene-generator/pkg/material"
)

// PointLight is a spherical light record. Its material is always
// white lambertian with albedo 1; there is no way to customize it.
type PointLight struct {
	record.Marker
	Position core.Vec3
	Radius   float64
}

// NewPointLight creates a point light record
func NewPointLight(position core.Vec3, radius float64) PointLight {
	return PointLight{Position: position, Radius: radius}
}

// ObjectType implements core.Object
func (l PointLight) ObjectType() string { return core.TypePointLight }

// Material returns the fixed light material
func (l PointLight) Material() material.Material {
	return material.NewLightMaterial()
}

// MarshalJSON writes {"type":"point_light","pos":..,"radius":..,"material":..}
func (l PointLight) MarshalJSON() ([]byte, error) {
	return json.Marshal(geometry.SphereJSON{
		Type:     core.TypePointLight,
		Pos:      l.Position,
		Radius:   l.Radius,
		Material: l.Material(),
	})
}

// UnmarshalJSON reads a point light record. The stored material is
// validated but dropped, since lights only carry the fixed one.
func (l *PointLight) UnmarshalJSON(data []byte) error {
	var raw geometry.SphereJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = NewPointLight(raw.Pos, raw.Radius)
	return nil
}

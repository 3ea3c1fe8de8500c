package material

import (
	"encoding/json"
	"fmt"

	"github.com/df07/go-scene-generator/pkg/core"
)

// Kind is the material type tag written to the document
type Kind string

const (
	KindMetal      Kind = "metal"
	KindLambertian Kind = "lambertian"
)

// ParseKind validates a material type tag
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMetal, KindLambertian:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown material type %q", s)
	}
}

// Material holds the shading parameters embedded in sphere and light records
type Material struct {
	Type   Kind
	Fuzz   float64 // 0.0 = perfect mirror; generated scenes always use 0
	Albedo float64
	Color  core.Color
}

// NewMetal creates a metal material with no fuzz
func NewMetal(albedo float64, color core.Color) Material {
	return Material{Type: KindMetal, Fuzz: 0.0, Albedo: albedo, Color: color}
}

// NewLambertian creates a diffuse material
func NewLambertian(albedo float64, color core.Color) Material {
	return Material{Type: KindLambertian, Fuzz: 0.0, Albedo: albedo, Color: color}
}

// NewLightMaterial returns the fixed material of point lights: white lambertian, albedo 1
func NewLightMaterial() Material {
	return NewLambertian(1.0, core.White)
}

type materialJSON struct {
	Type   Kind       `json:"type"`
	Fuzz   float64    `json:"fuzz"`
	Albedo float64    `json:"albedo"`
	Color  core.Color `json:"color"`
}

// MarshalJSON writes the material record with fields in document order
func (m Material) MarshalJSON() ([]byte, error) {
	return json.Marshal(materialJSON(m))
}

// UnmarshalJSON reads a material record, checking the type tag and color range
func (m *Material) UnmarshalJSON(data []byte) error {
	var raw materialJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := ParseKind(string(raw.Type))
	if err != nil {
		return err
	}
	raw.Type = kind
	*m = Material(raw)
	return nil
}

package core

import "encoding/json"

// Vec3 represents a position in scene space
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// vec3JSON is the document layout of a position group
type vec3JSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// MarshalJSON writes the vector as {"x":..,"y":..,"z":..}
func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal(vec3JSON{X: v.X, Y: v.Y, Z: v.Z})
}

// UnmarshalJSON reads a {"x":..,"y":..,"z":..} position group
func (v *Vec3) UnmarshalJSON(data []byte) error {
	var raw vec3JSON
	if err := unmarshalStrict(data, &raw); err != nil {
		return err
	}
	*v = Vec3{X: raw.X, Y: raw.Y, Z: raw.Z}
	return nil
}

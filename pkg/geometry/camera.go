package geometry

import (
	"encoding/json"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/internal/record"
)

// Camera is the viewpoint record of a scene document
type Camera struct {
	record.Marker
	Position core.Vec3
	LookAt   core.Vec3
	VFov     float64 // Field of view in degrees
}

// NewCamera creates a camera record
func NewCamera(fov float64, position, lookAt core.Vec3) Camera {
	return Camera{Position: position, LookAt: lookAt, VFov: fov}
}

// ObjectType implements core.Object
func (c Camera) ObjectType() string { return core.TypeCamera }

type cameraJSON struct {
	Type   string    `json:"type"`
	Pos    core.Vec3 `json:"pos"`
	LookAt core.Vec3 `json:"lookat"`
	Fov    float64   `json:"fov"`
}

// MarshalJSON writes {"type":"camera","pos":..,"lookat":..,"fov":..}
func (c Camera) MarshalJSON() ([]byte, error) {
	return json.Marshal(cameraJSON{
		Type:   core.TypeCamera,
		Pos:    c.Position,
		LookAt: c.LookAt,
		Fov:    c.VFov,
	})
}

// UnmarshalJSON reads a camera record; the type tag is checked by the caller
func (c *Camera) UnmarshalJSON(data []byte) error {
	var raw cameraJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = NewCamera(raw.Fov, raw.Pos, raw.LookAt)
	return nil
}

package scene

import (
	"encoding/json"
	"fmt"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/lights"
	"github.com/df07/go-scene-generator/pkg/material"
)

// Record is one serialized scene object, a JSON object literal
type Record []byte

func (r Record) String() string { return string(r) }

// Emit serializes any scene object into a record
func Emit(obj core.Object) (Record, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", obj.ObjectType(), err)
	}
	return Record(data), nil
}

// EmitCamera emits a camera record. The fov is written as passed; the
// generator passes 60 unless configured otherwise.
func EmitCamera(fov float64, position, lookAt core.Vec3) (Record, error) {
	return Emit(geometry.NewCamera(fov, position, lookAt))
}

// EmitSphere emits a sphere record with a fuzz-free material.
// NOTE: shapeType does not select the material; the tag is always "metal",
// matching the documents the renderer has been consuming.
func EmitSphere(position core.Vec3, radius float64, shapeType material.Kind, albedo float64, color core.Color) (Record, error) {
	return Emit(geometry.NewSphere(position, radius, material.NewMetal(albedo, color)))
}

// EmitPointLight emits a white point light record
func EmitPointLight(position core.Vec3, radius float64) (Record, error) {
	return Emit(lights.NewPointLight(position, radius))
}

package core

import "github.com/df07/go-scene-generator/pkg/internal/record"

// Logger interface for generator logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(string, ...interface{}) {}

// Object is one record of a scene document. The set of implementations
// is closed to this module: camera, sphere and point light embed
// record.Marker, which other modules cannot import.
type Object interface {
	// ObjectType returns the "type" discriminant written to the document
	ObjectType() string
	record.Sealed
}

// Object type discriminants
const (
	TypeCamera     = "camera"
	TypeSphere     = "sphere"
	TypePointLight = "point_light"
)

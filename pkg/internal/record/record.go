// Package record seals the set of scene object variants. Only packages
// inside this module can import it, so only they can embed Marker.
package record

// Sealed is embedded by core.Object
type Sealed interface {
	sceneObject()
}

// Marker is embedded by each object variant to satisfy Sealed
type Marker struct{}

func (Marker) sceneObject() {}

package core

import (
	"encoding/json"
	"fmt"
	"math"
)

// ValidationError reports a color channel outside [0, 1]
type ValidationError struct {
	Channel string  // "red", "green" or "blue"
	Value   float64 // Offending value
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s channel must be in [0..1] range, got %v", e.Channel, e.Value)
}

// Color is an RGB triple with every channel in [0, 1].
// The zero value is black.
type Color struct {
	r, g, b float64
}

// Predefined colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// NewColor validates the channels in red, green, blue order and fails on the first one out of range
func NewColor(r, g, b float64) (Color, error) {
	channels := []struct {
		name  string
		value float64
	}{
		{"red", r},
		{"green", g},
		{"blue", b},
	}
	for _, c := range channels {
		if !inUnitRange(c.value) {
			return Color{}, &ValidationError{Channel: c.name, Value: c.value}
		}
	}
	return Color{r: r, g: g, b: b}, nil
}

// MustColor is like NewColor but panics on invalid input.
// Only meant for package-level constants.
func MustColor(r, g, b float64) Color {
	c, err := NewColor(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// R returns the red channel
func (c Color) R() float64 { return c.r }

// G returns the green channel
func (c Color) G() float64 { return c.g }

// B returns the blue channel
func (c Color) B() float64 { return c.b }

func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.r, c.g, c.b)
}

// inUnitRange rejects NaN as well
func inUnitRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0.0 && v <= 1.0
}

// colorJSON is the document layout of a color group
type colorJSON struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// MarshalJSON writes the color as {"r":..,"g":..,"b":..}
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(colorJSON{R: c.r, G: c.g, B: c.b})
}

// UnmarshalJSON reads a color group and applies the same range checks as NewColor
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw colorJSON
	if err := unmarshalStrict(data, &raw); err != nil {
		return err
	}
	parsed, err := NewColor(raw.R, raw.G, raw.B)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

package material

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/df07/go-scene-generator/pkg/core"
)

func TestNewMetal(t *testing.T) {
	m := NewMetal(0.8, core.Blue)
	if m.Type != KindMetal {
		t.Errorf("Expected metal, got %s", m.Type)
	}
	if m.Fuzz != 0.0 {
		t.Errorf("Expected fuzz 0, got %f", m.Fuzz)
	}
	if m.Albedo != 0.8 {
		t.Errorf("Expected albedo 0.8, got %f", m.Albedo)
	}
	if m.Color != core.Blue {
		t.Errorf("Expected blue, got %v", m.Color)
	}
}

func TestNewLightMaterial(t *testing.T) {
	m := NewLightMaterial()
	if m.Type != KindLambertian || m.Albedo != 1.0 || m.Color != core.White {
		t.Errorf("Unexpected light material %+v", m)
	}
}

func TestMaterial_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		expected string
	}{
		{
			name:     "metal",
			material: NewMetal(0.8, core.Red),
			expected: `{"type":"metal","fuzz":0,"albedo":0.8,"color":{"r":1,"g":0,"b":0}}`,
		},
		{
			name:     "light",
			material: NewLightMaterial(),
			expected: `{"type":"lambertian","fuzz":0,"albedo":1,"color":{"r":1,"g":1,"b":1}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.material)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, data)
			}
		})
	}
}

func TestMaterial_UnmarshalJSON(t *testing.T) {
	var m Material
	err := json.Unmarshal([]byte(`{"type":"lambertian","fuzz":0,"albedo":0.6,"color":{"r":0.4,"g":0.8,"b":0.1}}`), &m)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m != NewLambertian(0.6, core.MustColor(0.4, 0.8, 0.1)) {
		t.Errorf("Unexpected material %+v", m)
	}

	if err := json.Unmarshal([]byte(`{"type":"glass","fuzz":0,"albedo":1,"color":{"r":1,"g":1,"b":1}}`), &m); err == nil {
		t.Error("Expected error for unknown material type, got none")
	}

	err = json.Unmarshal([]byte(`{"type":"metal","fuzz":0,"albedo":1,"color":{"r":1,"g":1,"b":7}}`), &m)
	var verr *core.ValidationError
	if !errors.As(err, &verr) || verr.Channel != "blue" {
		t.Errorf("Expected blue channel validation error, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"metal", "lambertian"} {
		if _, err := ParseKind(s); err != nil {
			t.Errorf("ParseKind(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseKind("dielectric"); err == nil {
		t.Error("Expected error for dielectric")
	}
}

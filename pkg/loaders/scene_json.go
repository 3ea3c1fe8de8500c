package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/lights"
)

// SceneDocument is a decoded scene document
type SceneDocument struct {
	Objects []core.Object // All objects in document order
	Cameras []geometry.Camera
	Spheres []geometry.Sphere
	Lights  []lights.PointLight
}

// Summary counts objects per type
type Summary struct {
	Cameras int `json:"cameras"`
	Spheres int `json:"spheres"`
	Lights  int `json:"lights"`
	Total   int `json:"total"`
}

// Summary returns per-type counts
func (d *SceneDocument) Summary() Summary {
	return Summary{
		Cameras: len(d.Cameras),
		Spheres: len(d.Spheres),
		Lights:  len(d.Lights),
		Total:   len(d.Objects),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%d objects (%d cameras, %d spheres, %d lights)", s.Total, s.Cameras, s.Spheres, s.Lights)
}

// ParseScene decodes a scene document: a JSON array of typed records.
// Unknown types and color channels outside [0, 1] are rejected.
func ParseScene(reader io.Reader) (*SceneDocument, error) {
	var records []json.RawMessage
	dec := json.NewDecoder(reader)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse scene document: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("failed to parse scene document: unexpected data after the array")
	}

	doc := &SceneDocument{
		Objects: make([]core.Object, 0, len(records)),
		Cameras: make([]geometry.Camera, 0, 1),
		Spheres: make([]geometry.Sphere, 0, len(records)),
		Lights:  make([]lights.PointLight, 0, 1),
	}
	for i, record := range records {
		obj, err := decodeObject(record)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		doc.Objects = append(doc.Objects, obj)
		switch o := obj.(type) {
		case geometry.Camera:
			doc.Cameras = append(doc.Cameras, o)
		case geometry.Sphere:
			doc.Spheres = append(doc.Spheres, o)
		case lights.PointLight:
			doc.Lights = append(doc.Lights, o)
		}
	}
	return doc, nil
}

// requiredFields lists the keys every record of a type must carry
var requiredFields = map[string][]string{
	core.TypeCamera:     {"pos", "lookat", "fov"},
	core.TypeSphere:     {"pos", "radius", "material"},
	core.TypePointLight: {"pos", "radius", "material"},
}

var materialFields = []string{"type", "fuzz", "albedo", "color"}

// decodeObject dispatches on the "type" discriminant
func decodeObject(record json.RawMessage) (core.Object, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(record, &fields); err != nil {
		return nil, err
	}

	var objType string
	if raw, ok := fields["type"]; ok {
		if err := json.Unmarshal(raw, &objType); err != nil {
			return nil, fmt.Errorf("invalid type: %w", err)
		}
	}
	if objType == "" {
		return nil, fmt.Errorf("missing type")
	}
	required, ok := requiredFields[objType]
	if !ok {
		return nil, fmt.Errorf("unrecognized type %q", objType)
	}
	if err := checkFields(fields, required); err != nil {
		return nil, fmt.Errorf("%s: %w", objType, err)
	}
	if raw, ok := fields["material"]; ok {
		var matFields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &matFields); err != nil {
			return nil, fmt.Errorf("%s material: %w", objType, err)
		}
		if err := checkFields(matFields, materialFields); err != nil {
			return nil, fmt.Errorf("%s material: %w", objType, err)
		}
	}

	switch objType {
	case core.TypeCamera:
		var c geometry.Camera
		err := json.Unmarshal(record, &c)
		return c, err
	case core.TypeSphere:
		var s geometry.Sphere
		err := json.Unmarshal(record, &s)
		return s, err
	default:
		var l lights.PointLight
		err := json.Unmarshal(record, &l)
		return l, err
	}
}

// checkFields treats null the same as an absent key
func checkFields(fields map[string]json.RawMessage, keys []string) error {
	for _, key := range keys {
		if raw, ok := fields[key]; !ok || string(raw) == "null" {
			return fmt.Errorf("missing field %q", key)
		}
	}
	return nil
}

// LoadScene loads and parses a scene document file
func LoadScene(filename string) (*SceneDocument, error) {
	if err := validateScenePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseScene(file)
}

// validateScenePath only accepts .json files
func validateScenePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(filepath.Clean(filename)))
	if ext != ".json" {
		return fmt.Errorf("scene file must have .json extension, got %q", ext)
	}
	return nil
}

package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BuiltinPresetID names the preset that uses DefaultConfig unchanged
const BuiltinPresetID = "classic"

const builtinGroup = "Built-in Presets"

// PresetInfo represents a discovered scene preset with its metadata
type PresetInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Preset name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "yaml"
	FilePath    string `json:"filePath"`    // Path to the YAML file (yaml type only)
}

// PresetGroup represents a group of related presets
type PresetGroup struct {
	Name    string       `json:"name"`
	Presets []PresetInfo `json:"presets"`
}

// PresetsResponse is the grouped preset listing
type PresetsResponse struct {
	Groups []PresetGroup `json:"groups"`
}

// findPresetDir returns dir, or the first of scenes/ and ../scenes/ that exists
func findPresetDir(dir string) string {
	if dir != "" {
		return dir
	}
	for _, path := range []string{"scenes", "../scenes"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ListPresets scans dir (or the default scenes directory) for *.yaml presets
func ListPresets(dir string) ([]PresetInfo, error) {
	presetDir := findPresetDir(dir)
	if presetDir == "" {
		return []PresetInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(presetDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan preset directory: %w", err)
	}

	presets := make([]PresetInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParsePresetMetadata(filePath)
		if err != nil {
			// Keep going; one unreadable header should not hide the others
			fmt.Fprintf(os.Stderr, "Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		presets = append(presets, info)
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].DisplayName < presets[j].DisplayName
	})
	return presets, nil
}

// ParsePresetMetadata extracts metadata from the leading comment block of a preset file:
//
//	# Scene: Dense Grid
//	# Description: 30x30 spheres
//	# Group: Large
func ParsePresetMetadata(filePath string) (PresetInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := PresetInfo{
		ID:          nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "Presets",
		Type:        "yaml",
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		// Unreadable files keep the fallback values
		return info, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") {
			break
		}
		content, ok := strings.CutPrefix(line, "# ")
		if !ok {
			continue
		}
		if v, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.Name = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(content, "Group:"); ok {
			info.Group = strings.TrimSpace(v)
		}
	}
	info.DisplayName = info.Name

	return info, scanner.Err()
}

// ListAllPresets returns the built-in preset followed by file presets, grouped
func ListAllPresets(dir string) (PresetsResponse, error) {
	var response PresetsResponse

	builtIn := PresetInfo{
		ID:          BuiltinPresetID,
		Name:        "Classic Grid",
		DisplayName: "Classic Grid",
		Description: "15x15 red, green and blue metal spheres over a ground sphere",
		Group:       builtinGroup,
		Type:        "builtin",
	}

	filePresets, err := ListPresets(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list presets: %w", err)
	}

	groupMap := make(map[string][]PresetInfo)
	for _, p := range append([]PresetInfo{builtIn}, filePresets...) {
		groupMap[p.Group] = append(groupMap[p.Group], p)
	}

	var groupNames []string
	for name := range groupMap {
		if name != builtinGroup {
			groupNames = append(groupNames, name)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, PresetGroup{Name: builtinGroup, Presets: groupMap[builtinGroup]})
	for _, name := range groupNames {
		response.Groups = append(response.Groups, PresetGroup{Name: name, Presets: groupMap[name]})
	}
	return response, nil
}

// ResolvePreset maps a preset name to a config path for LoadConfig.
// The built-in preset resolves to "" (defaults); a path ending in .yaml is used as is.
func ResolvePreset(name, dir string) (string, error) {
	switch {
	case name == "" || name == BuiltinPresetID:
		return "", nil
	case strings.HasSuffix(name, ".yaml"):
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("preset file %s: %w", name, err)
		}
		return name, nil
	}

	presetDir := findPresetDir(dir)
	if presetDir == "" {
		return "", fmt.Errorf("unknown preset %q: no scenes directory", name)
	}
	path := filepath.Join(presetDir, name+".yaml")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("unknown preset %q", name)
	}
	return path, nil
}

// titleCase converts a filename-style string to title case
// e.g., "dense-grid" -> "Dense Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}

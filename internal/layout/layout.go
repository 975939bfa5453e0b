// Package layout persists the visual editor's zone canvas positions in a
// JSON sidecar file next to the template. The sidecar is editor state, not
// template data: the format engine never reads it, and a missing or corrupt
// sidecar is treated as "no saved layout", never as an error.
package layout

import (
	"math"
	"os"

	"github.com/goccy/go-json"
)

const (
	sidecarSuffix = ".h3tc-layout.json"
	version       = 1
)

// Point is a zone's canvas position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout maps map name to zone id to canvas position.
type Layout map[string]map[string]Point

type sidecarMap struct {
	Zones map[string]Point `json:"zones"`
}

type sidecarFile struct {
	Version int                   `json:"version"`
	Maps    map[string]sidecarMap `json:"maps"`
}

// SidecarPath returns the sidecar file path for a template file.
func SidecarPath(templatePath string) string {
	return templatePath + sidecarSuffix
}

// Load reads zone positions from the template's sidecar.
//
// Postcondition: returns a non-nil Layout; a missing, unreadable, corrupt,
// or wrong-version sidecar yields an empty layout and a nil error.
func Load(templatePath string) Layout {
	data, err := os.ReadFile(SidecarPath(templatePath))
	if err != nil {
		return Layout{}
	}

	var file sidecarFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Layout{}
	}
	if file.Version != version {
		return Layout{}
	}

	out := make(Layout, len(file.Maps))
	for mapName, m := range file.Maps {
		zones := make(map[string]Point, len(m.Zones))
		for zoneID, p := range m.Zones {
			zones[zoneID] = p
		}
		out[mapName] = zones
	}
	return out
}

// Save writes zone positions to the template's sidecar, coordinates rounded
// to one decimal.
//
// Postcondition: the sidecar holds a complete valid document or the previous
// content is left untouched.
func Save(templatePath string, layouts Layout) error {
	file := sidecarFile{Version: version, Maps: make(map[string]sidecarMap, len(layouts))}
	for mapName, zones := range layouts {
		m := sidecarMap{Zones: make(map[string]Point, len(zones))}
		for zoneID, p := range zones {
			m.Zones[zoneID] = Point{X: round1(p.X), Y: round1(p.Y)}
		}
		file.Maps[mapName] = m
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(SidecarPath(templatePath), data, 0644)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Package schema is the registry of column layouts, enumerations, canonical
// headers, and conversion defaults for the three template-pack formats.
// It is pure data: parsers, writers, and converters look structure up here
// and never hard-code column positions.
package schema

import "fmt"

// ID identifies one of the three supported template formats.
type ID string

const (
	// SOD is the legacy 85-column format (padded to 183 by the original
	// game editor). 9 town factions, Elemental in place of Conflux.
	SOD ID = "sod"
	// Hota is the 138-column HOTA 1.7.x format adding Cove and Factory.
	Hota ID = "hota"
	// Hota18 is the 140-column HOTA 1.8.x format adding Bulwark.
	Hota18 ID = "hota18"
)

// ParseID converts a user-supplied format name to an ID.
//
// Postcondition: returns a valid ID or a non-nil error.
func ParseID(s string) (ID, error) {
	switch ID(s) {
	case SOD, Hota, Hota18:
		return ID(s), nil
	}
	return "", fmt.Errorf("unknown format %q (supported: sod, hota, hota18)", s)
}

// Name returns the human-readable format name.
func (id ID) Name() string {
	switch id {
	case SOD:
		return "SOD"
	case Hota:
		return "HOTA 1.7.x"
	case Hota18:
		return "HOTA 1.8.x"
	}
	return string(id)
}

// Town factions in canonical column order. The SOD list uses the canonical
// "Conflux" name for the column the game labels "Elemental"; the header
// tables keep the original label.
var (
	TownFactionsSOD = []string{
		"Castle", "Rampart", "Tower", "Inferno", "Necropolis",
		"Dungeon", "Stronghold", "Fortress", "Conflux",
	}
	TownFactionsHota = []string{
		"Castle", "Rampart", "Tower", "Inferno", "Necropolis",
		"Dungeon", "Stronghold", "Fortress", "Conflux", "Cove", "Factory",
	}
	TownFactionsHota18 = []string{
		"Castle", "Rampart", "Tower", "Inferno", "Necropolis",
		"Dungeon", "Stronghold", "Fortress", "Conflux", "Cove", "Factory", "Bulwark",
	}
)

// Monster factions in canonical column order. Forge exists only in SOD;
// Conflux, Cove, and Factory only in the extended formats.
var (
	MonsterFactionsSOD = []string{
		"Neutral", "Castle", "Rampart", "Tower", "Inferno", "Necropolis",
		"Dungeon", "Stronghold", "Fortress", "Forge",
	}
	MonsterFactionsHota = []string{
		"Neutral", "Castle", "Rampart", "Tower", "Inferno", "Necropolis",
		"Dungeon", "Stronghold", "Fortress", "Conflux", "Cove", "Factory",
	}
	MonsterFactionsHota18 = []string{
		"Neutral", "Castle", "Rampart", "Tower", "Inferno", "Necropolis",
		"Dungeon", "Stronghold", "Fortress", "Conflux", "Cove", "Factory", "Bulwark",
	}
)

// Terrain types in canonical column order.
var (
	TerrainsSOD = []string{
		"Dirt", "Sand", "Grass", "Snow", "Swamp", "Rough", "Cave", "Lava",
	}
	TerrainsHota = []string{
		"Dirt", "Sand", "Grass", "Snow", "Swamp", "Rough", "Cave", "Lava",
		"Highlands", "Wasteland",
	}
)

// Resources in canonical column order, identical in every format.
var Resources = []string{"Wood", "Mercury", "Ore", "Sulfur", "Crystal", "Gems", "Gold"}

// ZoneOptionCount is the number of HOTA zone-option columns.
const ZoneOptionCount = 18

// TreasureTierCount is the number of treasure tiers (low/high/density each).
const TreasureTierCount = 3

package schema

// Default cell values applied when a conversion introduces fields the source
// format does not carry. These mirror the values the HOTA editor writes for
// a freshly created template.

// DefaultFieldCounts are the row-4 field-count cells for a HOTA 1.7.x pack:
// town, terrain, zone type, pack new, map new, zone new, connection new.
var DefaultFieldCounts = [7]string{"11", "10", "4", "8", "10", "18", "4"}

// Hota18TownFieldCount replaces the town field count when upgrading to 1.8.x.
const Hota18TownFieldCount = "12"

// HotaTownFieldCount is the town field count of a 1.7.x pack.
const HotaTownFieldCount = "11"

// DefaultMapOptions holds the 10 map-option cells in column order.
var DefaultMapOptions = [10]string{
	"",  // artifacts
	"",  // combo arts
	"",  // spells
	"",  // secondary skills
	"",  // objects
	"",  // rock blocks
	"",  // zone sparseness
	"x", // special weeks disabled
	"x", // spell research
	"x", // anarchy
}

// DefaultZoneOptions holds the 18 zone-option cells in column order.
var DefaultZoneOptions = [ZoneOptionCount]string{
	"",  // placement
	"",  // objects
	"",  // min objects
	"",  // image settings
	"",  // force neutral creatures
	"",  // allow non coherent road
	"",  // zone repulsion
	"",  // town hint
	"3", // monsters disposition standard
	"",  // monsters disposition custom
	"1", // monsters joining percentage
	"x", // monsters join only for money
	"",  // min airship shipyards
	"",  // airship shipyard density
	"",  // terrain hint
	"",  // allowed factions
	"",  // faction hint
	"",  // max block value
}

// Enabled is the cell value marking a flag or presence column as set.
const Enabled = "x"

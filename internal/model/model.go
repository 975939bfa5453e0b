// Package model holds the format-agnostic in-memory representation of a
// template pack. All cell values are stored as strings exactly as they
// appear in the file, so a parse/write round trip preserves formatting.
// Records that exist only in the extended formats are nil-able pointers:
// nil means "not present in the source format", a zero value means
// "present but blank".
package model

// PositionConstraints restricts where a zone or connection may be placed,
// by human player count and total player count.
type PositionConstraints struct {
	MinHuman string
	MaxHuman string
	MinTotal string
	MaxTotal string
}

// TownSettings holds the town quota block used for both player-owned and
// neutral towns.
type TownSettings struct {
	MinTowns      string
	MinCastles    string
	TownDensity   string
	CastleDensity string
}

// TreasureTier is one low/high/density treasure triple; every zone has three.
type TreasureTier struct {
	Low     string
	High    string
	Density string
}

// ZoneOptions is the 18-field HOTA-only zone option record, in column order.
type ZoneOptions struct {
	Placement                   string
	Objects                     string
	MinObjects                  string
	ImageSettings               string
	ForceNeutralCreatures       string
	AllowNonCoherentRoad        string
	ZoneRepulsion               string
	TownHint                    string
	MonstersDispositionStandard string
	MonstersDispositionCustom   string
	MonstersJoiningPercentage   string
	MonstersJoinOnlyForMoney    string
	MinAirshipShipyards         string
	AirshipShipyardDensity      string
	TerrainHint                 string
	AllowedFactions             string
	FactionHint                 string
	MaxBlockValue               string
}

// Cells returns the option values in column order.
func (z *ZoneOptions) Cells() [18]string {
	return [18]string{
		z.Placement, z.Objects, z.MinObjects, z.ImageSettings,
		z.ForceNeutralCreatures, z.AllowNonCoherentRoad, z.ZoneRepulsion,
		z.TownHint, z.MonstersDispositionStandard, z.MonstersDispositionCustom,
		z.MonstersJoiningPercentage, z.MonstersJoinOnlyForMoney,
		z.MinAirshipShipyards, z.AirshipShipyardDensity, z.TerrainHint,
		z.AllowedFactions, z.FactionHint, z.MaxBlockValue,
	}
}

// ZoneOptionsFromCells builds a ZoneOptions from 18 values in column order.
func ZoneOptionsFromCells(cells [18]string) *ZoneOptions {
	return &ZoneOptions{
		Placement:                   cells[0],
		Objects:                     cells[1],
		MinObjects:                  cells[2],
		ImageSettings:               cells[3],
		ForceNeutralCreatures:       cells[4],
		AllowNonCoherentRoad:        cells[5],
		ZoneRepulsion:               cells[6],
		TownHint:                    cells[7],
		MonstersDispositionStandard: cells[8],
		MonstersDispositionCustom:   cells[9],
		MonstersJoiningPercentage:   cells[10],
		MonstersJoinOnlyForMoney:    cells[11],
		MinAirshipShipyards:         cells[12],
		AirshipShipyardDensity:      cells[13],
		TerrainHint:                 cells[14],
		AllowedFactions:             cells[15],
		FactionHint:                 cells[16],
		MaxBlockValue:               cells[17],
	}
}

// Zone is one map-generation region.
type Zone struct {
	ID string

	// Type flag-set; cells hold "x" or "".
	HumanStart    string
	ComputerStart string
	Treasure      string
	Junction      string

	BaseSize  string
	Positions PositionConstraints
	Ownership string

	PlayerTowns   TownSettings
	NeutralTowns  TownSettings
	TownsSameType string

	// Presence/value maps keyed by canonical enumeration names from the
	// schema registry. Key membership is format-shaped: a key absent from
	// the map means the faction/terrain does not exist in the pack's format.
	TownTypes       map[string]string
	MinMines        map[string]string
	MineDensity     map[string]string
	TerrainMatch    string
	Terrains        map[string]string
	MonsterStrength string
	MonsterMatch    string
	MonsterFactions map[string]string

	TreasureTiers [3]TreasureTier

	// Options is set only for extended-format packs.
	Options *ZoneOptions
}

// ConnectionOptions is the HOTA-only connection option record.
type ConnectionOptions struct {
	Road            string
	Type            string
	Fictive         string
	PortalRepulsion string
}

// Connection is one guarded link between two zones.
type Connection struct {
	Zone1       string
	Zone2       string
	Value       string
	Wide        string
	BorderGuard string
	Positions   PositionConstraints

	// Options is set only for extended-format packs.
	Options *ConnectionOptions

	// ExtraZoneCols preserves zone-area cells found on connection-only rows
	// (no zone id on the row), keyed by absolute column index, so writing
	// reproduces the source file exactly.
	ExtraZoneCols map[int]string
}

// MapOptions is the HOTA-only per-map option record, in column order.
type MapOptions struct {
	Artifacts            string
	ComboArts            string
	Spells               string
	SecondarySkills      string
	Objects              string
	RockBlocks           string
	ZoneSparseness       string
	SpecialWeeksDisabled string
	SpellResearch        string
	Anarchy              string
}

// Cells returns the option values in column order.
func (m *MapOptions) Cells() [10]string {
	return [10]string{
		m.Artifacts, m.ComboArts, m.Spells, m.SecondarySkills, m.Objects,
		m.RockBlocks, m.ZoneSparseness, m.SpecialWeeksDisabled,
		m.SpellResearch, m.Anarchy,
	}
}

// MapOptionsFromCells builds a MapOptions from 10 values in column order.
func MapOptionsFromCells(cells [10]string) *MapOptions {
	return &MapOptions{
		Artifacts:            cells[0],
		ComboArts:            cells[1],
		Spells:               cells[2],
		SecondarySkills:      cells[3],
		Objects:              cells[4],
		RockBlocks:           cells[5],
		ZoneSparseness:       cells[6],
		SpecialWeeksDisabled: cells[7],
		SpellResearch:        cells[8],
		Anarchy:              cells[9],
	}
}

// TemplateMap is one map's template data. Zones and connections are
// independent ordered sequences; the "row i carries zone i and connection i"
// packing of the file format is reconstructed only at write time.
type TemplateMap struct {
	Name    string
	MinSize string
	MaxSize string

	// Options is set only for extended-format packs.
	Options *MapOptions

	Zones       []*Zone
	Connections []*Connection
}

// PackMetadata is the HOTA-only pack-level record stored in the first data
// row of the file.
type PackMetadata struct {
	Name               string
	Description        string
	TownSelection      string
	Heroes             string
	Mirror             string
	Tags               string
	MaxBattleRounds    string
	ForbidHiringHeroes string
}

// FieldCounts is the HOTA-only field-count record from the first data row.
type FieldCounts struct {
	Town          string
	Terrain       string
	ZoneType      string
	PackNew       string
	MapNew        string
	ZoneNew       string
	ConnectionNew string
}

// TemplatePack is the root of the row model: an ordered sequence of maps
// plus optional extended-format pack-level records.
type TemplatePack struct {
	// Name identifies the pack. Extended parsers fill it from the metadata
	// row; for legacy packs the caller sets it (typically the file stem).
	Name string

	Metadata    *PackMetadata
	FieldCounts *FieldCounts
	Maps        []*TemplateMap

	// HeaderRows are the three raw header rows as read from the source
	// file, retained for byte-level round trips. Converted packs carry the
	// target format's canonical headers instead.
	HeaderRows [][]string
}

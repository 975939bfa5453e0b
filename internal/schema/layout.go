package schema

// Layout maps every named field of a format to its 0-based column index.
// Indices for sections absent from a format are -1. Layouts are initialised
// once as package data and never mutated.
type Layout struct {
	ID ID

	// Field counts and pack metadata, extended formats only (row 4).
	FieldCountTown    int
	FieldCountTerrain int
	FieldCountZone    int
	FieldCountPack    int
	FieldCountMap     int
	FieldCountZoneNew int
	FieldCountConn    int

	PackName               int
	PackDesc               int
	PackTownSelection      int
	PackHeroes             int
	PackMirror             int
	PackTags               int
	PackMaxBattleRounds    int
	PackForbidHiringHeroes int

	// Map section.
	MapName    int
	MapMinSize int
	MapMaxSize int

	// Map options, extended formats only (10 contiguous columns).
	MapOptionsStart int

	// Zone section.
	ZoneID        int
	HumanStart    int
	ComputerStart int
	Treasure      int
	Junction      int
	BaseSize      int

	MinHumanPos int
	MaxHumanPos int
	MinTotalPos int
	MaxTotalPos int

	Ownership int

	PlayerMinTowns      int
	PlayerMinCastles    int
	PlayerTownDensity   int
	PlayerCastleDensity int

	NeutralMinTowns      int
	NeutralMinCastles    int
	NeutralTownDensity   int
	NeutralCastleDensity int

	TownsSameType int

	TownTypesStart       int
	MinMinesStart        int
	MineDensityStart     int
	TerrainMatch         int
	TerrainsStart        int
	MonsterStrength      int
	MonsterMatch         int
	MonsterFactionsStart int
	TreasureStart        int

	// Zone options, extended formats only (18 contiguous columns).
	ZoneOptionsStart int

	// Connection section.
	ConnZone1       int
	ConnZone2       int
	ConnValue       int
	ConnWide        int
	ConnBorderGuard int

	// Connection options, extended formats only.
	ConnRoad            int
	ConnType            int
	ConnFictive         int
	ConnPortalRepulsion int

	ConnMinHumanPos int
	ConnMaxHumanPos int
	ConnMinTotalPos int
	ConnMaxTotalPos int

	// ActiveColumns is the number of columns carrying data. WrittenColumns
	// is the cell count emitted per row (the HOTA family files end every row
	// with one trailing empty cell). PaddedColumns is the legacy editor's
	// right-padded width, 0 when the format has no padding convention.
	ActiveColumns  int
	WrittenColumns int
	PaddedColumns  int

	// Canonical enumeration orders for the indexed column groups.
	TownFactions    []string
	MonsterFactions []string
	Terrains        []string
}

// ConnStart returns the first column of the connection section.
func (l *Layout) ConnStart() int { return l.ConnZone1 }

// ConnEnd returns the last column of the connection section (inclusive).
func (l *Layout) ConnEnd() int { return l.ConnMaxTotalPos }

// Extended reports whether the layout carries the HOTA-only sections.
func (l *Layout) Extended() bool { return l.ZoneOptionsStart >= 0 }

// SODLayout is the legacy 85-column layout.
var SODLayout = Layout{
	ID: SOD,

	FieldCountTown:    -1,
	FieldCountTerrain: -1,
	FieldCountZone:    -1,
	FieldCountPack:    -1,
	FieldCountMap:     -1,
	FieldCountZoneNew: -1,
	FieldCountConn:    -1,

	PackName:               -1,
	PackDesc:               -1,
	PackTownSelection:      -1,
	PackHeroes:             -1,
	PackMirror:             -1,
	PackTags:               -1,
	PackMaxBattleRounds:    -1,
	PackForbidHiringHeroes: -1,

	MapName:    0,
	MapMinSize: 1,
	MapMaxSize: 2,

	MapOptionsStart: -1,

	ZoneID:        3,
	HumanStart:    4,
	ComputerStart: 5,
	Treasure:      6,
	Junction:      7,
	BaseSize:      8,

	MinHumanPos: 9,
	MaxHumanPos: 10,
	MinTotalPos: 11,
	MaxTotalPos: 12,

	Ownership: 13,

	PlayerMinTowns:      14,
	PlayerMinCastles:    15,
	PlayerTownDensity:   16,
	PlayerCastleDensity: 17,

	NeutralMinTowns:      18,
	NeutralMinCastles:    19,
	NeutralTownDensity:   20,
	NeutralCastleDensity: 21,

	TownsSameType: 22,

	TownTypesStart:       23,
	MinMinesStart:        32,
	MineDensityStart:     39,
	TerrainMatch:         46,
	TerrainsStart:        47,
	MonsterStrength:      55,
	MonsterMatch:         56,
	MonsterFactionsStart: 57,
	TreasureStart:        67,

	ZoneOptionsStart: -1,

	ConnZone1:       76,
	ConnZone2:       77,
	ConnValue:       78,
	ConnWide:        79,
	ConnBorderGuard: 80,

	ConnRoad:            -1,
	ConnType:            -1,
	ConnFictive:         -1,
	ConnPortalRepulsion: -1,

	ConnMinHumanPos: 81,
	ConnMaxHumanPos: 82,
	ConnMinTotalPos: 83,
	ConnMaxTotalPos: 84,

	ActiveColumns:  85,
	WrittenColumns: 85,
	PaddedColumns:  183,

	TownFactions:    TownFactionsSOD,
	MonsterFactions: MonsterFactionsSOD,
	Terrains:        TerrainsSOD,
}

// HotaLayout is the HOTA 1.7.x 138-column layout.
var HotaLayout = Layout{
	ID: Hota,

	FieldCountTown:    0,
	FieldCountTerrain: 1,
	FieldCountZone:    2,
	FieldCountPack:    3,
	FieldCountMap:     4,
	FieldCountZoneNew: 5,
	FieldCountConn:    6,

	PackName:               7,
	PackDesc:               8,
	PackTownSelection:      9,
	PackHeroes:             10,
	PackMirror:             11,
	PackTags:               12,
	PackMaxBattleRounds:    13,
	PackForbidHiringHeroes: 14,

	MapName:    15,
	MapMinSize: 16,
	MapMaxSize: 17,

	MapOptionsStart: 18,

	ZoneID:        28,
	HumanStart:    29,
	ComputerStart: 30,
	Treasure:      31,
	Junction:      32,
	BaseSize:      33,

	MinHumanPos: 34,
	MaxHumanPos: 35,
	MinTotalPos: 36,
	MaxTotalPos: 37,

	Ownership: 38,

	PlayerMinTowns:      39,
	PlayerMinCastles:    40,
	PlayerTownDensity:   41,
	PlayerCastleDensity: 42,

	NeutralMinTowns:      43,
	NeutralMinCastles:    44,
	NeutralTownDensity:   45,
	NeutralCastleDensity: 46,

	TownsSameType: 47,

	TownTypesStart:       48,
	MinMinesStart:        59,
	MineDensityStart:     66,
	TerrainMatch:         73,
	TerrainsStart:        74,
	MonsterStrength:      84,
	MonsterMatch:         85,
	MonsterFactionsStart: 86,
	TreasureStart:        98,

	ZoneOptionsStart: 107,

	ConnZone1:       125,
	ConnZone2:       126,
	ConnValue:       127,
	ConnWide:        128,
	ConnBorderGuard: 129,

	ConnRoad:            130,
	ConnType:            131,
	ConnFictive:         132,
	ConnPortalRepulsion: 133,

	ConnMinHumanPos: 134,
	ConnMaxHumanPos: 135,
	ConnMinTotalPos: 136,
	ConnMaxTotalPos: 137,

	ActiveColumns:  138,
	WrittenColumns: 139,
	PaddedColumns:  0,

	TownFactions:    TownFactionsHota,
	MonsterFactions: MonsterFactionsHota,
	Terrains:        TerrainsHota,
}

// Hota18Layout is the HOTA 1.8.x 140-column layout. It is the 1.7.x layout
// with one extra town-type column and one extra monster-faction column
// (Bulwark), shifting everything behind each insertion.
var Hota18Layout = Layout{
	ID: Hota18,

	FieldCountTown:    0,
	FieldCountTerrain: 1,
	FieldCountZone:    2,
	FieldCountPack:    3,
	FieldCountMap:     4,
	FieldCountZoneNew: 5,
	FieldCountConn:    6,

	PackName:               7,
	PackDesc:               8,
	PackTownSelection:      9,
	PackHeroes:             10,
	PackMirror:             11,
	PackTags:               12,
	PackMaxBattleRounds:    13,
	PackForbidHiringHeroes: 14,

	MapName:    15,
	MapMinSize: 16,
	MapMaxSize: 17,

	MapOptionsStart: 18,

	ZoneID:        28,
	HumanStart:    29,
	ComputerStart: 30,
	Treasure:      31,
	Junction:      32,
	BaseSize:      33,

	MinHumanPos: 34,
	MaxHumanPos: 35,
	MinTotalPos: 36,
	MaxTotalPos: 37,

	Ownership: 38,

	PlayerMinTowns:      39,
	PlayerMinCastles:    40,
	PlayerTownDensity:   41,
	PlayerCastleDensity: 42,

	NeutralMinTowns:      43,
	NeutralMinCastles:    44,
	NeutralTownDensity:   45,
	NeutralCastleDensity: 46,

	TownsSameType: 47,

	TownTypesStart:       48,
	MinMinesStart:        60,
	MineDensityStart:     67,
	TerrainMatch:         74,
	TerrainsStart:        75,
	MonsterStrength:      85,
	MonsterMatch:         86,
	MonsterFactionsStart: 87,
	TreasureStart:        100,

	ZoneOptionsStart: 109,

	ConnZone1:       127,
	ConnZone2:       128,
	ConnValue:       129,
	ConnWide:        130,
	ConnBorderGuard: 131,

	ConnRoad:            132,
	ConnType:            133,
	ConnFictive:         134,
	ConnPortalRepulsion: 135,

	ConnMinHumanPos: 136,
	ConnMaxHumanPos: 137,
	ConnMinTotalPos: 138,
	ConnMaxTotalPos: 139,

	ActiveColumns:  140,
	WrittenColumns: 141,
	PaddedColumns:  0,

	TownFactions:    TownFactionsHota18,
	MonsterFactions: MonsterFactionsHota18,
	Terrains:        TerrainsHota,
}

// LayoutFor returns the layout for the given format.
//
// Precondition: id must be one of the three registered formats.
func LayoutFor(id ID) *Layout {
	switch id {
	case SOD:
		return &SODLayout
	case Hota:
		return &HotaLayout
	case Hota18:
		return &Hota18Layout
	}
	return nil
}

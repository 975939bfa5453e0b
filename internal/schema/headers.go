package schema

// CanonicalHeaders returns the standard 3 header rows for a format. Writers
// fall back to these when a pack carries no retained headers (converted
// packs always do); parsed packs keep their original header rows instead.
//
// Postcondition: returns exactly 3 rows, each WrittenColumns cells wide.
func CanonicalHeaders(id ID) [][]string {
	switch id {
	case SOD:
		return sodHeaders()
	case Hota:
		return hotaHeaders()
	case Hota18:
		return hota18Headers()
	}
	return nil
}

func blankRows(width int) (row1, row2, row3 []string) {
	return make([]string, width), make([]string, width), make([]string, width)
}

// fillZoneColumnHeaders writes the zone-section column labels shared by all
// formats into row3, using the layout's column positions and faction tables.
func fillZoneColumnHeaders(l *Layout, row3 []string, townHeaders []string) {
	row3[l.ZoneID] = "Id"
	row3[l.HumanStart] = "human start"
	row3[l.ComputerStart] = "computer start"
	row3[l.Treasure] = "Treasure"
	row3[l.Junction] = "Junction"
	row3[l.BaseSize] = "Base Size"
	row3[l.MinHumanPos] = "Minimum human positions"
	row3[l.MaxHumanPos] = "Maximum human positions"
	row3[l.MinTotalPos] = "Minimum total positions"
	row3[l.MaxTotalPos] = "Maximum total positions"
	row3[l.Ownership] = "Ownership"
	row3[l.PlayerMinTowns] = "Minimum towns"
	row3[l.PlayerMinCastles] = "Minimum castles"
	row3[l.PlayerTownDensity] = "Town Density"
	row3[l.PlayerCastleDensity] = "Castle Density"
	row3[l.NeutralMinTowns] = "Minimum towns"
	row3[l.NeutralMinCastles] = "Minimum castles"
	row3[l.NeutralTownDensity] = "Town Density"
	row3[l.NeutralCastleDensity] = "Castle Density"
	row3[l.TownsSameType] = "Towns are of same type"
	for i, faction := range townHeaders {
		row3[l.TownTypesStart+i] = faction
	}
	for i, res := range Resources {
		row3[l.MinMinesStart+i] = res
		row3[l.MineDensityStart+i] = res
	}
	row3[l.TerrainMatch] = "Match to town"
	for i, terrain := range l.Terrains {
		row3[l.TerrainsStart+i] = terrain
	}
	row3[l.MonsterStrength] = "Strength"
	row3[l.MonsterMatch] = "Match to town"
	for i, faction := range l.MonsterFactions {
		row3[l.MonsterFactionsStart+i] = faction
	}
	for tier := 0; tier < TreasureTierCount; tier++ {
		row3[l.TreasureStart+tier*3] = "Low"
		row3[l.TreasureStart+tier*3+1] = "High"
		row3[l.TreasureStart+tier*3+2] = "Density"
	}
}

func fillZoneSectionHeaders(l *Layout, row2 []string) {
	row2[l.HumanStart] = "Type"
	row2[l.MinHumanPos] = "Restrictions"
	row2[l.PlayerMinTowns] = "Player towns"
	row2[l.NeutralMinTowns] = "Neutral towns"
	row2[l.TownTypesStart] = "Town types"
	row2[l.MinMinesStart] = "Minimum mines"
	row2[l.MineDensityStart] = "Mine Density"
	row2[l.TerrainMatch] = "Terrain"
	row2[l.MonsterStrength] = "Monsters"
	row2[l.TreasureStart] = "Treasure"
	row2[l.ConnZone1] = "Zones"
	row2[l.ConnMinHumanPos] = "Restrictions"
}

func fillConnColumnHeaders(l *Layout, row3 []string) {
	row3[l.ConnZone1] = "Zone 1"
	row3[l.ConnZone2] = "Zone 2"
	row3[l.ConnValue] = "Value"
	row3[l.ConnWide] = "Wide"
	row3[l.ConnBorderGuard] = "Border Guard"
	row3[l.ConnMinHumanPos] = "Minimum human positions"
	row3[l.ConnMaxHumanPos] = "Maximum human positions"
	row3[l.ConnMinTotalPos] = "Minimum total positions"
	row3[l.ConnMaxTotalPos] = "Maximum total positions"
}

// SOD town columns are labelled with the game's own names, so the canonical
// Conflux column reads "Elemental".
var sodTownHeaders = []string{
	"Castle", "Rampart", "Tower", "Inferno", "Necropolis",
	"Dungeon", "Stronghold", "Fortress", "Elemental",
}

func sodHeaders() [][]string {
	l := &SODLayout
	row1, row2, row3 := blankRows(l.WrittenColumns)

	row1[l.MapName] = "Map"
	row1[l.ZoneID] = "Zone"
	row1[l.ConnZone1] = "Connections"

	fillZoneSectionHeaders(l, row2)

	row3[l.MapName] = "Name"
	row3[l.MapMinSize] = "Minimum Size"
	row3[l.MapMaxSize] = "Maximum Size"
	fillZoneColumnHeaders(l, row3, sodTownHeaders)
	fillConnColumnHeaders(l, row3)

	return [][]string{row1, row2, row3}
}

var fieldCountHeaders = []string{
	"Town", "Terrain", "Zone type", "Pack new", "Map new", "Zone new", "Connection new",
}

func hotaHeaders() [][]string {
	l := &HotaLayout
	row1, row2, row3 := blankRows(l.WrittenColumns)

	row1[l.MapName] = "Map"
	row1[l.ZoneID] = "Zone"
	row1[l.ConnZone1] = "Connections"

	fillZoneSectionHeaders(l, row2)
	row2[l.ZoneOptionsStart] = "Zone Options"
	row2[l.ConnRoad] = "Connection Options"

	for i, name := range fieldCountHeaders {
		row3[l.FieldCountTown+i] = name
	}
	row3[l.PackName] = "Pack name"
	row3[l.PackDesc] = "Description"
	row3[l.PackTownSelection] = "Town selection"
	row3[l.PackHeroes] = "Heroes"
	row3[l.PackMirror] = "Mirror"
	row3[l.PackTags] = "Tags"
	row3[l.PackMaxBattleRounds] = "Max battle rounds"
	row3[l.PackForbidHiringHeroes] = "Forbid hiring heroes"

	row3[l.MapName] = "Name"
	row3[l.MapMinSize] = "Minimum Size"
	row3[l.MapMaxSize] = "Maximum Size"
	mapOptions := []string{
		"Artifacts", "Combo arts", "Spells", "Secondary skills", "Objects",
		"Rock blocks", "Zone sparseness", "Special weeks disabled",
		"Spell research", "Anarchy",
	}
	for i, name := range mapOptions {
		row3[l.MapOptionsStart+i] = name
	}

	fillZoneColumnHeaders(l, row3, l.TownFactions)

	zoneOptions := []string{
		"Placement", "Objects", "Min objects", "Image settings",
		"Force neutral creatures", "Allow non coherent road", "Zone repulsion",
		"Town hint", "Monsters disposition standard", "Monsters disposition custom",
		"Monsters joining percentage", "Monsters join only for money",
		"Min airship shipyards", "Airship shipyard density",
		"Terrain hint", "Allowed factions", "Faction hint", "Max block value",
	}
	for i, name := range zoneOptions {
		row3[l.ZoneOptionsStart+i] = name
	}

	fillConnColumnHeaders(l, row3)
	row3[l.ConnRoad] = "Road"
	row3[l.ConnType] = "Type"
	row3[l.ConnFictive] = "Fictive"
	row3[l.ConnPortalRepulsion] = "Portal repulsion"

	return [][]string{row1, row2, row3}
}

func hota18Headers() [][]string {
	l := &Hota18Layout
	row1, row2, row3 := blankRows(l.WrittenColumns)

	row1[l.FieldCountTown] = "Pack"
	row1[l.MapName] = "Map"
	row1[l.ZoneID] = "Zone"
	row1[l.ConnZone1] = "Connections"

	row2[l.FieldCountTown] = "Field count"
	row2[l.PackName] = "Options"
	fillZoneSectionHeaders(l, row2)
	row2[l.ZoneOptionsStart] = "Options"
	row2[l.ConnRoad] = "Options"

	for i, name := range fieldCountHeaders {
		row3[l.FieldCountTown+i] = name
	}
	row3[l.PackName] = "Name"
	row3[l.PackDesc] = "Description"
	row3[l.PackTownSelection] = "Town selection"
	row3[l.PackHeroes] = "Heroes"
	row3[l.PackMirror] = "Mirror"
	row3[l.PackTags] = "Tags"
	row3[l.PackMaxBattleRounds] = "Max Battle Rounds"
	row3[l.PackForbidHiringHeroes] = "Forbid Hiring Heroes"

	row3[l.MapName] = "Name"
	row3[l.MapMinSize] = "Minimum Size"
	row3[l.MapMaxSize] = "Maximum Size"
	mapOptions := []string{
		"Artifacts", "Combo Arts", "Spells", "Secondary skills", "Objects",
		"Rock blocks", "Zone sparseness", "Special weeks disabled",
		"Spell Research", "Anarchy",
	}
	for i, name := range mapOptions {
		row3[l.MapOptionsStart+i] = name
	}

	fillZoneColumnHeaders(l, row3, l.TownFactions)

	zoneOptions := []string{
		"Placement", "Objects", "Minimum objects", "Image settings",
		"Force neutral creatures", "Allow non-coherent road", "Zone repulsion",
		"Town Hint", "Monsters disposition (standard)", "Monsters disposition (custom)",
		"Monsters joining percentage", "Monsters join only for money",
		"Minimum airship shipyards", "Airship shipyard Density",
		"Terrain Hint", "Allowed Factions", "Faction Hint", "Max block value",
	}
	for i, name := range zoneOptions {
		row3[l.ZoneOptionsStart+i] = name
	}

	fillConnColumnHeaders(l, row3)
	row3[l.ConnRoad] = "Road"
	row3[l.ConnType] = "Type"
	row3[l.ConnFictive] = "Fictive"
	row3[l.ConnPortalRepulsion] = "Portal repulsion"

	return [][]string{row1, row2, row3}
}

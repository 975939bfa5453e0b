package format

import (
	"fmt"

	"github.com/cory-johannsen/h3tc/internal/model"
	"github.com/cory-johannsen/h3tc/internal/schema"
)

// WriteOptions controls writer output details that do not affect the data.
type WriteOptions struct {
	// LegacyPadding right-pads every SOD row with empty cells to 183
	// columns, matching the original game editor's files byte for byte.
	// Ignored for the extended formats.
	LegacyPadding bool
}

// Write serialises a pack to raw delimited text in the given format.
//
// The pack must already be shaped for the target format: writing never drops
// or invents fields, so a pack parsed from or converted to another format is
// rejected with a WriteError. Output is all-or-nothing — on error no bytes
// are returned.
func Write(id schema.ID, pack *model.TemplatePack, opts WriteOptions) ([]byte, error) {
	l := schema.LayoutFor(id)
	if l == nil {
		return nil, fmt.Errorf("unknown format %q", id)
	}
	if err := validateShape(l, pack); err != nil {
		return nil, err
	}

	width := l.WrittenColumns
	if !l.Extended() && opts.LegacyPadding {
		width = l.PaddedColumns
	}

	headers := pack.HeaderRows
	if len(headers) != 3 {
		headers = schema.CanonicalHeaders(id)
	}

	rows := make([][]string, 0, len(headers))
	for _, h := range headers {
		if opts.LegacyPadding && !l.Extended() {
			h = padded(h, width)
		}
		rows = append(rows, h)
	}

	firstDataRow := true
	for _, m := range pack.Maps {
		rows = appendMapRows(l, rows, pack, m, width, firstDataRow)
		firstDataRow = false
	}

	return writeRows(rows)
}

func appendMapRows(l *schema.Layout, rows [][]string, pack *model.TemplatePack, m *model.TemplateMap, width int, firstDataRow bool) [][]string {
	count := len(m.Zones)
	if len(m.Connections) > count {
		count = len(m.Connections)
	}
	if count == 0 {
		count = 1 // the map-name row is always emitted
	}

	for i := 0; i < count; i++ {
		row := make([]string, width)

		if firstDataRow && i == 0 && l.Extended() {
			fillPackRow(l, row, pack)
		}
		if i == 0 {
			row[l.MapName] = m.Name
			row[l.MapMinSize] = m.MinSize
			row[l.MapMaxSize] = m.MaxSize
			if l.Extended() {
				cells := m.Options.Cells()
				for j, v := range cells {
					row[l.MapOptionsStart+j] = v
				}
			}
		}
		if i < len(m.Zones) {
			fillZone(l, row, m.Zones[i])
		}
		if i < len(m.Connections) {
			fillConnection(l, row, m.Connections[i])
		}

		rows = append(rows, row)
	}
	return rows
}

func fillPackRow(l *schema.Layout, row []string, pack *model.TemplatePack) {
	fc := pack.FieldCounts
	row[l.FieldCountTown] = fc.Town
	row[l.FieldCountTerrain] = fc.Terrain
	row[l.FieldCountZone] = fc.ZoneType
	row[l.FieldCountPack] = fc.PackNew
	row[l.FieldCountMap] = fc.MapNew
	row[l.FieldCountZoneNew] = fc.ZoneNew
	row[l.FieldCountConn] = fc.ConnectionNew

	md := pack.Metadata
	row[l.PackName] = md.Name
	row[l.PackDesc] = md.Description
	row[l.PackTownSelection] = md.TownSelection
	row[l.PackHeroes] = md.Heroes
	row[l.PackMirror] = md.Mirror
	row[l.PackTags] = md.Tags
	row[l.PackMaxBattleRounds] = md.MaxBattleRounds
	row[l.PackForbidHiringHeroes] = md.ForbidHiringHeroes
}

func fillZone(l *schema.Layout, row []string, z *model.Zone) {
	row[l.ZoneID] = z.ID
	row[l.HumanStart] = z.HumanStart
	row[l.ComputerStart] = z.ComputerStart
	row[l.Treasure] = z.Treasure
	row[l.Junction] = z.Junction
	row[l.BaseSize] = z.BaseSize

	row[l.MinHumanPos] = z.Positions.MinHuman
	row[l.MaxHumanPos] = z.Positions.MaxHuman
	row[l.MinTotalPos] = z.Positions.MinTotal
	row[l.MaxTotalPos] = z.Positions.MaxTotal

	row[l.Ownership] = z.Ownership

	row[l.PlayerMinTowns] = z.PlayerTowns.MinTowns
	row[l.PlayerMinCastles] = z.PlayerTowns.MinCastles
	row[l.PlayerTownDensity] = z.PlayerTowns.TownDensity
	row[l.PlayerCastleDensity] = z.PlayerTowns.CastleDensity

	row[l.NeutralMinTowns] = z.NeutralTowns.MinTowns
	row[l.NeutralMinCastles] = z.NeutralTowns.MinCastles
	row[l.NeutralTownDensity] = z.NeutralTowns.TownDensity
	row[l.NeutralCastleDensity] = z.NeutralTowns.CastleDensity

	row[l.TownsSameType] = z.TownsSameType

	for i, faction := range l.TownFactions {
		row[l.TownTypesStart+i] = z.TownTypes[faction]
	}
	for i, res := range schema.Resources {
		row[l.MinMinesStart+i] = z.MinMines[res]
		row[l.MineDensityStart+i] = z.MineDensity[res]
	}

	row[l.TerrainMatch] = z.TerrainMatch
	for i, terrain := range l.Terrains {
		row[l.TerrainsStart+i] = z.Terrains[terrain]
	}

	row[l.MonsterStrength] = z.MonsterStrength
	row[l.MonsterMatch] = z.MonsterMatch
	for i, faction := range l.MonsterFactions {
		row[l.MonsterFactionsStart+i] = z.MonsterFactions[faction]
	}

	for tier := 0; tier < schema.TreasureTierCount; tier++ {
		offset := l.TreasureStart + tier*3
		row[offset] = z.TreasureTiers[tier].Low
		row[offset+1] = z.TreasureTiers[tier].High
		row[offset+2] = z.TreasureTiers[tier].Density
	}

	if l.Extended() {
		cells := z.Options.Cells()
		for j, v := range cells {
			row[l.ZoneOptionsStart+j] = v
		}
	}
}

func fillConnection(l *schema.Layout, row []string, c *model.Connection) {
	for col, val := range c.ExtraZoneCols {
		if col >= 0 && col < len(row) {
			row[col] = val
		}
	}

	row[l.ConnZone1] = c.Zone1
	row[l.ConnZone2] = c.Zone2
	row[l.ConnValue] = c.Value
	row[l.ConnWide] = c.Wide
	row[l.ConnBorderGuard] = c.BorderGuard

	if l.Extended() {
		row[l.ConnRoad] = c.Options.Road
		row[l.ConnType] = c.Options.Type
		row[l.ConnFictive] = c.Options.Fictive
		row[l.ConnPortalRepulsion] = c.Options.PortalRepulsion
	}

	row[l.ConnMinHumanPos] = c.Positions.MinHuman
	row[l.ConnMaxHumanPos] = c.Positions.MaxHuman
	row[l.ConnMinTotalPos] = c.Positions.MinTotal
	row[l.ConnMaxTotalPos] = c.Positions.MaxTotal
}

// validateShape rejects packs whose record presence or enumeration key sets
// do not match the target format. Dropping or defaulting fields is the
// converter's job, never the writer's.
func validateShape(l *schema.Layout, pack *model.TemplatePack) error {
	werr := func(format string, args ...any) error {
		return &WriteError{Schema: l.ID, Reason: fmt.Sprintf(format, args...)}
	}

	if l.Extended() {
		if pack.FieldCounts == nil || pack.Metadata == nil {
			return werr("pack has no field counts or pack metadata; convert it first")
		}
	} else {
		if pack.FieldCounts != nil || pack.Metadata != nil {
			return werr("pack carries pack metadata the format cannot represent; convert it first")
		}
	}

	for _, m := range pack.Maps {
		if l.Extended() && m.Options == nil {
			return werr("map %q has no map options; convert the pack first", m.Name)
		}
		if !l.Extended() && m.Options != nil {
			return werr("map %q carries map options the format cannot represent; convert the pack first", m.Name)
		}
		for _, z := range m.Zones {
			if l.Extended() && z.Options == nil {
				return werr("zone %s in map %q has no zone options; convert the pack first", z.ID, m.Name)
			}
			if !l.Extended() && z.Options != nil {
				return werr("zone %s in map %q carries zone options the format cannot represent; convert the pack first", z.ID, m.Name)
			}
			if err := checkKeys(werr, m.Name, z.ID, "town type", z.TownTypes, l.TownFactions); err != nil {
				return err
			}
			if err := checkKeys(werr, m.Name, z.ID, "monster faction", z.MonsterFactions, l.MonsterFactions); err != nil {
				return err
			}
			if err := checkKeys(werr, m.Name, z.ID, "terrain", z.Terrains, l.Terrains); err != nil {
				return err
			}
			if err := checkKeys(werr, m.Name, z.ID, "mine minimum", z.MinMines, schema.Resources); err != nil {
				return err
			}
			if err := checkKeys(werr, m.Name, z.ID, "mine density", z.MineDensity, schema.Resources); err != nil {
				return err
			}
		}
		for _, c := range m.Connections {
			if l.Extended() && c.Options == nil {
				return werr("connection %s-%s in map %q has no connection options; convert the pack first", c.Zone1, c.Zone2, m.Name)
			}
			if !l.Extended() && c.Options != nil {
				return werr("connection %s-%s in map %q carries connection options the format cannot represent; convert the pack first", c.Zone1, c.Zone2, m.Name)
			}
		}
	}
	return nil
}

func checkKeys(werr func(string, ...any) error, mapName, zoneID, what string, got map[string]string, want []string) error {
	for _, k := range want {
		if _, ok := got[k]; !ok {
			return werr("zone %s in map %q is missing %s %q; convert the pack first", zoneID, mapName, what, k)
		}
	}
	if len(got) != len(want) {
		for k := range got {
			known := false
			for _, w := range want {
				if k == w {
					known = true
					break
				}
			}
			if !known {
				return werr("zone %s in map %q carries %s %q the format cannot represent; convert the pack first", zoneID, mapName, what, k)
			}
		}
	}
	return nil
}

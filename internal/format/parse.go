package format

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/h3tc/internal/model"
	"github.com/cory-johannsen/h3tc/internal/schema"
)

// Parse turns raw delimited text in the given format into a TemplatePack.
//
// The three header rows are retained verbatim on the pack but carry no model
// data. For extended formats the first data row additionally holds the
// field-count and pack-metadata cells; the rest of that row parses like any
// other. A new map begins on every row with a non-empty map-name cell; row
// content before the first map is a StructuralError. Cell values are stored
// verbatim — only the strictly-numeric identifier columns (zone id,
// connection zone refs) are validated, yielding a ParseError when malformed.
//
// Postcondition: returns a non-nil pack or a non-nil error, never both.
func Parse(id schema.ID, data []byte) (*model.TemplatePack, error) {
	l := schema.LayoutFor(id)
	if l == nil {
		return nil, fmt.Errorf("unknown format %q", id)
	}

	rows, err := readRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) < 4 {
		return nil, &StructuralError{Reason: "template needs 3 header rows and at least 1 data row"}
	}

	pack := &model.TemplatePack{HeaderRows: rows[:3]}
	var current *model.TemplateMap

	for i, raw := range rows[3:] {
		fileRow := i + 4
		row := padded(raw, l.ActiveColumns)

		if l.Extended() && i == 0 {
			pack.FieldCounts = &model.FieldCounts{
				Town:          row[l.FieldCountTown],
				Terrain:       row[l.FieldCountTerrain],
				ZoneType:      row[l.FieldCountZone],
				PackNew:       row[l.FieldCountPack],
				MapNew:        row[l.FieldCountMap],
				ZoneNew:       row[l.FieldCountZoneNew],
				ConnectionNew: row[l.FieldCountConn],
			}
			pack.Metadata = &model.PackMetadata{
				Name:               row[l.PackName],
				Description:        row[l.PackDesc],
				TownSelection:      row[l.PackTownSelection],
				Heroes:             row[l.PackHeroes],
				Mirror:             row[l.PackMirror],
				Tags:               row[l.PackTags],
				MaxBattleRounds:    row[l.PackMaxBattleRounds],
				ForbidHiringHeroes: row[l.PackForbidHiringHeroes],
			}
			pack.Name = pack.Metadata.Name
		}

		mapName := strings.TrimSpace(row[l.MapName])
		zoneID := strings.TrimSpace(row[l.ZoneID])
		hasConn := rowHasConnection(l, row)

		if mapName != "" {
			m := &model.TemplateMap{
				Name:    mapName,
				MinSize: row[l.MapMinSize],
				MaxSize: row[l.MapMaxSize],
			}
			if l.Extended() {
				var cells [10]string
				for j := range cells {
					cells[j] = row[l.MapOptionsStart+j]
				}
				m.Options = model.MapOptionsFromCells(cells)
			}
			pack.Maps = append(pack.Maps, m)
			current = m
		}

		if zoneID == "" && !hasConn {
			continue
		}
		if current == nil {
			return nil, &StructuralError{Row: fileRow, Reason: "zone or connection data before the first map name"}
		}

		if zoneID != "" {
			zone, err := parseZone(l, row, fileRow)
			if err != nil {
				return nil, err
			}
			current.Zones = append(current.Zones, zone)
		}

		if hasConn {
			conn, err := parseConnection(l, row, fileRow)
			if err != nil {
				return nil, err
			}
			// Orphan zone-area cells on connection-only rows are kept so
			// the row writes back exactly as it was read.
			if zoneID == "" {
				for j := l.ZoneID; j < l.ConnZone1; j++ {
					if strings.TrimSpace(row[j]) != "" {
						if conn.ExtraZoneCols == nil {
							conn.ExtraZoneCols = make(map[int]string)
						}
						conn.ExtraZoneCols[j] = row[j]
					}
				}
			}
			current.Connections = append(current.Connections, conn)
		}
	}

	return pack, nil
}

func rowHasConnection(l *schema.Layout, row []string) bool {
	for j := l.ConnStart(); j <= l.ConnEnd(); j++ {
		if strings.TrimSpace(row[j]) != "" {
			return true
		}
	}
	return false
}

// requireUint validates a strictly-numeric identifier cell. Empty cells are
// acceptable; anything non-empty must be an unsigned decimal integer.
func requireUint(fileRow int, field, value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return &ParseError{Row: fileRow, Field: field, Value: value}
		}
	}
	return nil
}

func parseZone(l *schema.Layout, row []string, fileRow int) (*model.Zone, error) {
	if err := requireUint(fileRow, "zone id", row[l.ZoneID]); err != nil {
		return nil, err
	}

	townTypes := make(map[string]string, len(l.TownFactions))
	for i, faction := range l.TownFactions {
		townTypes[faction] = row[l.TownTypesStart+i]
	}
	minMines := make(map[string]string, len(schema.Resources))
	mineDensity := make(map[string]string, len(schema.Resources))
	for i, res := range schema.Resources {
		minMines[res] = row[l.MinMinesStart+i]
		mineDensity[res] = row[l.MineDensityStart+i]
	}
	terrains := make(map[string]string, len(l.Terrains))
	for i, terrain := range l.Terrains {
		terrains[terrain] = row[l.TerrainsStart+i]
	}
	monsterFactions := make(map[string]string, len(l.MonsterFactions))
	for i, faction := range l.MonsterFactions {
		monsterFactions[faction] = row[l.MonsterFactionsStart+i]
	}

	var tiers [3]model.TreasureTier
	for tier := 0; tier < schema.TreasureTierCount; tier++ {
		offset := l.TreasureStart + tier*3
		tiers[tier] = model.TreasureTier{
			Low:     row[offset],
			High:    row[offset+1],
			Density: row[offset+2],
		}
	}

	zone := &model.Zone{
		ID:            row[l.ZoneID],
		HumanStart:    row[l.HumanStart],
		ComputerStart: row[l.ComputerStart],
		Treasure:      row[l.Treasure],
		Junction:      row[l.Junction],
		BaseSize:      row[l.BaseSize],
		Positions: model.PositionConstraints{
			MinHuman: row[l.MinHumanPos],
			MaxHuman: row[l.MaxHumanPos],
			MinTotal: row[l.MinTotalPos],
			MaxTotal: row[l.MaxTotalPos],
		},
		Ownership: row[l.Ownership],
		PlayerTowns: model.TownSettings{
			MinTowns:      row[l.PlayerMinTowns],
			MinCastles:    row[l.PlayerMinCastles],
			TownDensity:   row[l.PlayerTownDensity],
			CastleDensity: row[l.PlayerCastleDensity],
		},
		NeutralTowns: model.TownSettings{
			MinTowns:      row[l.NeutralMinTowns],
			MinCastles:    row[l.NeutralMinCastles],
			TownDensity:   row[l.NeutralTownDensity],
			CastleDensity: row[l.NeutralCastleDensity],
		},
		TownsSameType:   row[l.TownsSameType],
		TownTypes:       townTypes,
		MinMines:        minMines,
		MineDensity:     mineDensity,
		TerrainMatch:    row[l.TerrainMatch],
		Terrains:        terrains,
		MonsterStrength: row[l.MonsterStrength],
		MonsterMatch:    row[l.MonsterMatch],
		MonsterFactions: monsterFactions,
		TreasureTiers:   tiers,
	}

	if l.Extended() {
		var cells [18]string
		for j := range cells {
			cells[j] = row[l.ZoneOptionsStart+j]
		}
		zone.Options = model.ZoneOptionsFromCells(cells)
	}

	return zone, nil
}

func parseConnection(l *schema.Layout, row []string, fileRow int) (*model.Connection, error) {
	if err := requireUint(fileRow, "connection zone 1", row[l.ConnZone1]); err != nil {
		return nil, err
	}
	if err := requireUint(fileRow, "connection zone 2", row[l.ConnZone2]); err != nil {
		return nil, err
	}

	conn := &model.Connection{
		Zone1:       row[l.ConnZone1],
		Zone2:       row[l.ConnZone2],
		Value:       row[l.ConnValue],
		Wide:        row[l.ConnWide],
		BorderGuard: row[l.ConnBorderGuard],
		Positions: model.PositionConstraints{
			MinHuman: row[l.ConnMinHumanPos],
			MaxHuman: row[l.ConnMaxHumanPos],
			MinTotal: row[l.ConnMinTotalPos],
			MaxTotal: row[l.ConnMaxTotalPos],
		},
	}

	if l.Extended() {
		conn.Options = &model.ConnectionOptions{
			Road:            row[l.ConnRoad],
			Type:            row[l.ConnType],
			Fictive:         row[l.ConnFictive],
			PortalRepulsion: row[l.ConnPortalRepulsion],
		}
	}

	return conn, nil
}

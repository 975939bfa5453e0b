package format_test

import (
	"strings"

	"github.com/cory-johannsen/h3tc/internal/model"
	"github.com/cory-johannsen/h3tc/internal/schema"
)

// tsv joins rows into tab-separated CRLF-terminated text.
func tsv(rows ...[]string) []byte {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

func cells(width int) []string { return make([]string, width) }

func presence(keys []string, value string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[k] = value
	}
	return m
}

// newZone builds a zone shaped for the given format with every presence map
// fully keyed.
func newZone(id schema.ID, zoneID string) *model.Zone {
	l := schema.LayoutFor(id)
	z := &model.Zone{
		ID:         zoneID,
		HumanStart: schema.Enabled,
		BaseSize:   "25",
		Ownership:  "1",
		Positions:  model.PositionConstraints{MinHuman: "1", MaxHuman: "8"},
		PlayerTowns: model.TownSettings{
			MinTowns:      "1",
			CastleDensity: "1",
		},
		TownsSameType:   schema.Enabled,
		TownTypes:       presence(l.TownFactions, schema.Enabled),
		MinMines:        presence(schema.Resources, "1"),
		MineDensity:     presence(schema.Resources, ""),
		TerrainMatch:    schema.Enabled,
		Terrains:        presence(l.Terrains, schema.Enabled),
		MonsterStrength: "3",
		MonsterFactions: presence(l.MonsterFactions, schema.Enabled),
		TreasureTiers: [3]model.TreasureTier{
			{Low: "300", High: "3000", Density: "9"},
			{Low: "3000", High: "6000", Density: "6"},
			{Low: "10000", High: "15000", Density: "1"},
		},
	}
	if l.Extended() {
		z.Options = model.ZoneOptionsFromCells(schema.DefaultZoneOptions)
	}
	return z
}

func newConnection(id schema.ID, a, b string) *model.Connection {
	c := &model.Connection{
		Zone1: a,
		Zone2: b,
		Value: "2100",
		Wide:  schema.Enabled,
	}
	if schema.LayoutFor(id).Extended() {
		c.Options = &model.ConnectionOptions{Road: "+"}
	}
	return c
}

// newPack builds a one-map pack with two zones and one connection, shaped
// for the given format.
func newPack(id schema.ID, name string) *model.TemplatePack {
	m := &model.TemplateMap{
		Name:        name,
		MinSize:     "36",
		MaxSize:     "144",
		Zones:       []*model.Zone{newZone(id, "1"), newZone(id, "2")},
		Connections: []*model.Connection{newConnection(id, "1", "2")},
	}
	pack := &model.TemplatePack{Name: name, Maps: []*model.TemplateMap{m}}

	if schema.LayoutFor(id).Extended() {
		m.Options = model.MapOptionsFromCells(schema.DefaultMapOptions)
		fc := schema.DefaultFieldCounts
		pack.FieldCounts = &model.FieldCounts{
			Town:          fc[0],
			Terrain:       fc[1],
			ZoneType:      fc[2],
			PackNew:       fc[3],
			MapNew:        fc[4],
			ZoneNew:       fc[5],
			ConnectionNew: fc[6],
		}
		if id == schema.Hota18 {
			pack.FieldCounts.Town = schema.Hota18TownFieldCount
		}
		pack.Metadata = &model.PackMetadata{Name: name, Description: "test pack"}
	}
	return pack
}

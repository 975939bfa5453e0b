package convert

import (
	"github.com/cory-johannsen/h3tc/internal/model"
	"github.com/cory-johannsen/h3tc/internal/schema"
)

// sodToHota upgrades a legacy pack to HOTA 1.7.x. Shared fields are copied
// unchanged; the HOTA-only records receive the registry defaults; the
// factions and terrains HOTA introduces follow the coherence rule against
// the full SOD sets (the monster check includes Forge, which HOTA drops).
func sodToHota(pack *model.TemplatePack) *model.TemplatePack {
	fc := schema.DefaultFieldCounts
	out := &model.TemplatePack{
		Name: pack.Name,
		Metadata: &model.PackMetadata{
			Name: pack.Name,
		},
		FieldCounts: &model.FieldCounts{
			Town:          fc[0],
			Terrain:       fc[1],
			ZoneType:      fc[2],
			PackNew:       fc[3],
			MapNew:        fc[4],
			ZoneNew:       fc[5],
			ConnectionNew: fc[6],
		},
		HeaderRows: schema.CanonicalHeaders(schema.Hota),
	}

	for _, m := range pack.Maps {
		out.Maps = append(out.Maps, upgradeMap(m))
	}
	return out
}

func upgradeMap(m *model.TemplateMap) *model.TemplateMap {
	out := &model.TemplateMap{
		Name:    m.Name,
		MinSize: m.MinSize,
		MaxSize: m.MaxSize,
		Options: model.MapOptionsFromCells(schema.DefaultMapOptions),
	}
	for _, z := range m.Zones {
		out.Zones = append(out.Zones, upgradeZone(z))
	}
	for _, c := range m.Connections {
		out.Connections = append(out.Connections, upgradeConnection(c))
	}
	return out
}

func upgradeZone(z *model.Zone) *model.Zone {
	out := z.Clone()

	townFlag := coherentFlag(z.TownTypes, schema.TownFactionsSOD)
	out.TownTypes = copyPresence(z.TownTypes, schema.TownFactionsSOD)
	out.TownTypes["Cove"] = townFlag
	out.TownTypes["Factory"] = townFlag

	terrainFlag := coherentFlag(z.Terrains, schema.TerrainsSOD)
	out.Terrains = copyPresence(z.Terrains, schema.TerrainsSOD)
	out.Terrains["Highlands"] = terrainFlag
	out.Terrains["Wasteland"] = terrainFlag

	monsterFlag := coherentFlag(z.MonsterFactions, schema.MonsterFactionsSOD)
	out.MonsterFactions = make(map[string]string, len(schema.MonsterFactionsHota))
	for _, faction := range schema.MonsterFactionsHota {
		if v, ok := z.MonsterFactions[faction]; ok {
			out.MonsterFactions[faction] = v
		} else {
			out.MonsterFactions[faction] = monsterFlag
		}
	}

	out.Options = model.ZoneOptionsFromCells(schema.DefaultZoneOptions)
	return out
}

func upgradeConnection(c *model.Connection) *model.Connection {
	out := c.Clone()
	out.Options = &model.ConnectionOptions{}
	// Orphan cell positions are layout-specific and meaningless after a
	// layout change.
	out.ExtraZoneCols = nil
	return out
}

// hotaToHota18 upgrades a 1.7.x pack to 1.8.x: Bulwark joins both faction
// sets under the coherence rule and the town field count becomes 12.
func hotaToHota18(pack *model.TemplatePack) *model.TemplatePack {
	out := pack.Clone()
	if out.FieldCounts != nil {
		out.FieldCounts.Town = schema.Hota18TownFieldCount
	}
	out.HeaderRows = schema.CanonicalHeaders(schema.Hota18)

	for _, m := range out.Maps {
		for _, z := range m.Zones {
			z.TownTypes["Bulwark"] = coherentFlag(z.TownTypes, schema.TownFactionsHota)
			z.MonsterFactions["Bulwark"] = coherentFlag(z.MonsterFactions, schema.MonsterFactionsHota)
		}
		for _, c := range m.Connections {
			c.ExtraZoneCols = nil
		}
	}
	return out
}

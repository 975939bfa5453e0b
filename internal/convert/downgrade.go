package convert

import (
	"github.com/cory-johannsen/h3tc/internal/model"
	"github.com/cory-johannsen/h3tc/internal/schema"
)

// hotaToSOD downgrades a 1.7.x pack to the legacy format. Every field the
// legacy format lacks is removed entirely — presence keys are dropped, not
// blanked — and Forge, which has no extended representation, comes back
// always-present in the monster set.
func hotaToSOD(pack *model.TemplatePack) *model.TemplatePack {
	out := &model.TemplatePack{
		Name:       pack.Name,
		HeaderRows: schema.CanonicalHeaders(schema.SOD),
	}
	for _, m := range pack.Maps {
		out.Maps = append(out.Maps, downgradeMap(m))
	}
	return out
}

func downgradeMap(m *model.TemplateMap) *model.TemplateMap {
	out := &model.TemplateMap{
		Name:    m.Name,
		MinSize: m.MinSize,
		MaxSize: m.MaxSize,
	}
	for _, z := range m.Zones {
		out.Zones = append(out.Zones, downgradeZone(z))
	}
	for _, c := range m.Connections {
		out.Connections = append(out.Connections, downgradeConnection(c))
	}
	return out
}

func downgradeZone(z *model.Zone) *model.Zone {
	out := z.Clone()
	out.TownTypes = copyPresence(z.TownTypes, schema.TownFactionsSOD)
	out.Terrains = copyPresence(z.Terrains, schema.TerrainsSOD)

	out.MonsterFactions = make(map[string]string, len(schema.MonsterFactionsSOD))
	for _, faction := range schema.MonsterFactionsSOD {
		if faction == "Forge" {
			out.MonsterFactions[faction] = schema.Enabled
			continue
		}
		out.MonsterFactions[faction] = z.MonsterFactions[faction]
	}

	out.Options = nil
	return out
}

func downgradeConnection(c *model.Connection) *model.Connection {
	out := c.Clone()
	out.Options = nil
	out.ExtraZoneCols = nil
	return out
}

// hota18ToHota downgrades a 1.8.x pack to 1.7.x: the Bulwark keys are
// removed from both faction sets and the town field count returns to 11.
func hota18ToHota(pack *model.TemplatePack) *model.TemplatePack {
	out := pack.Clone()
	if out.FieldCounts != nil {
		out.FieldCounts.Town = schema.HotaTownFieldCount
	}
	out.HeaderRows = schema.CanonicalHeaders(schema.Hota)

	for _, m := range out.Maps {
		for _, z := range m.Zones {
			z.TownTypes = copyPresence(z.TownTypes, schema.TownFactionsHota)
			z.MonsterFactions = copyPresence(z.MonsterFactions, schema.MonsterFactionsHota)
		}
		for _, c := range m.Connections {
			c.ExtraZoneCols = nil
		}
	}
	return out
}

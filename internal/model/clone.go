package model

// Deep-copy helpers. Converters never mutate their input pack; they clone
// and rewrite, so a pack handed to a writer is immutable from the caller's
// point of view.

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneIntMap(m map[int]string) map[int]string {
	if m == nil {
		return nil
	}
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of the zone.
func (z *Zone) Clone() *Zone {
	out := *z
	out.TownTypes = cloneStringMap(z.TownTypes)
	out.MinMines = cloneStringMap(z.MinMines)
	out.MineDensity = cloneStringMap(z.MineDensity)
	out.Terrains = cloneStringMap(z.Terrains)
	out.MonsterFactions = cloneStringMap(z.MonsterFactions)
	if z.Options != nil {
		opts := *z.Options
		out.Options = &opts
	}
	return &out
}

// Clone returns a deep copy of the connection.
func (c *Connection) Clone() *Connection {
	out := *c
	if c.Options != nil {
		opts := *c.Options
		out.Options = &opts
	}
	out.ExtraZoneCols = cloneIntMap(c.ExtraZoneCols)
	return &out
}

// Clone returns a deep copy of the map.
func (m *TemplateMap) Clone() *TemplateMap {
	out := *m
	if m.Options != nil {
		opts := *m.Options
		out.Options = &opts
	}
	out.Zones = make([]*Zone, len(m.Zones))
	for i, z := range m.Zones {
		out.Zones[i] = z.Clone()
	}
	out.Connections = make([]*Connection, len(m.Connections))
	for i, c := range m.Connections {
		out.Connections[i] = c.Clone()
	}
	return &out
}

// Clone returns a deep copy of the pack.
func (p *TemplatePack) Clone() *TemplatePack {
	out := *p
	if p.Metadata != nil {
		md := *p.Metadata
		out.Metadata = &md
	}
	if p.FieldCounts != nil {
		fc := *p.FieldCounts
		out.FieldCounts = &fc
	}
	out.Maps = make([]*TemplateMap, len(p.Maps))
	for i, m := range p.Maps {
		out.Maps[i] = m.Clone()
	}
	if p.HeaderRows != nil {
		out.HeaderRows = make([][]string, len(p.HeaderRows))
		for i, row := range p.HeaderRows {
			out.HeaderRows[i] = append([]string(nil), row...)
		}
	}
	return &out
}

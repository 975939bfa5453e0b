// Package convert transforms a template pack from one format's shape to
// another's. Conversion is a total function: every pair of formats is a
// documented superset/subset along the upgrade and downgrade paths, so no
// input can fail. Converters never mutate their input; they return a fresh
// pack carrying the target format's canonical headers.
package convert

import (
	"strings"

	"github.com/cory-johannsen/h3tc/internal/model"
	"github.com/cory-johannsen/h3tc/internal/schema"
)

// Convert returns pack reshaped from one format to another. Converting a
// pack to its own format returns a deep copy. Two-step paths are defined as
// the composition of their single hops (sod→hota18 is sod→hota followed by
// hota→hota18), so direct and chained conversions are observably identical.
func Convert(pack *model.TemplatePack, from, to schema.ID) *model.TemplatePack {
	switch {
	case from == to:
		return pack.Clone()
	case from == schema.SOD && to == schema.Hota:
		return sodToHota(pack)
	case from == schema.SOD && to == schema.Hota18:
		return hotaToHota18(sodToHota(pack))
	case from == schema.Hota && to == schema.Hota18:
		return hotaToHota18(pack)
	case from == schema.Hota18 && to == schema.Hota:
		return hota18ToHota(pack)
	case from == schema.Hota && to == schema.SOD:
		return hotaToSOD(pack)
	case from == schema.Hota18 && to == schema.SOD:
		return hotaToSOD(hota18ToHota(pack))
	}
	return pack.Clone()
}

// allEnabled reports whether every listed key is marked present.
func allEnabled(values map[string]string, keys []string) bool {
	for _, k := range keys {
		if strings.TrimSpace(values[k]) != schema.Enabled {
			return false
		}
	}
	return true
}

// coherentFlag implements the faction coherence rule: a faction introduced
// by an upgrade is enabled exactly when every faction of the source format's
// set is enabled.
func coherentFlag(source map[string]string, sourceKeys []string) string {
	if allEnabled(source, sourceKeys) {
		return schema.Enabled
	}
	return ""
}

// copyPresence rebuilds a presence map restricted to the given key order,
// missing keys becoming blank entries.
func copyPresence(source map[string]string, keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = source[k]
	}
	return out
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// column ownership: every column index 0..ActiveColumns-1 must belong to
// exactly one field or column group of its layout.
func ownershipMap(t *testing.T, l *Layout) []int {
	t.Helper()
	owned := make([]int, l.ActiveColumns)

	claim := func(idx, count int) {
		if idx < 0 {
			return
		}
		for i := idx; i < idx+count; i++ {
			require.Less(t, i, l.ActiveColumns, "column %d out of range for %s", i, l.ID)
			owned[i]++
		}
	}

	singles := []int{
		l.FieldCountTown, l.FieldCountTerrain, l.FieldCountZone,
		l.FieldCountPack, l.FieldCountMap, l.FieldCountZoneNew, l.FieldCountConn,
		l.PackName, l.PackDesc, l.PackTownSelection, l.PackHeroes,
		l.PackMirror, l.PackTags, l.PackMaxBattleRounds, l.PackForbidHiringHeroes,
		l.MapName, l.MapMinSize, l.MapMaxSize,
		l.ZoneID, l.HumanStart, l.ComputerStart, l.Treasure, l.Junction, l.BaseSize,
		l.MinHumanPos, l.MaxHumanPos, l.MinTotalPos, l.MaxTotalPos,
		l.Ownership,
		l.PlayerMinTowns, l.PlayerMinCastles, l.PlayerTownDensity, l.PlayerCastleDensity,
		l.NeutralMinTowns, l.NeutralMinCastles, l.NeutralTownDensity, l.NeutralCastleDensity,
		l.TownsSameType, l.TerrainMatch, l.MonsterStrength, l.MonsterMatch,
		l.ConnZone1, l.ConnZone2, l.ConnValue, l.ConnWide, l.ConnBorderGuard,
		l.ConnRoad, l.ConnType, l.ConnFictive, l.ConnPortalRepulsion,
		l.ConnMinHumanPos, l.ConnMaxHumanPos, l.ConnMinTotalPos, l.ConnMaxTotalPos,
	}
	for _, idx := range singles {
		claim(idx, 1)
	}

	claim(l.TownTypesStart, len(l.TownFactions))
	claim(l.MinMinesStart, len(Resources))
	claim(l.MineDensityStart, len(Resources))
	claim(l.TerrainsStart, len(l.Terrains))
	claim(l.MonsterFactionsStart, len(l.MonsterFactions))
	claim(l.TreasureStart, TreasureTierCount*3)
	if l.Extended() {
		claim(l.MapOptionsStart, 10)
		claim(l.ZoneOptionsStart, ZoneOptionCount)
	}

	return owned
}

func TestLayoutExhaustive(t *testing.T) {
	for _, l := range []*Layout{&SODLayout, &HotaLayout, &Hota18Layout} {
		owned := ownershipMap(t, l)
		for i, n := range owned {
			assert.Equal(t, 1, n, "%s column %d owned %d times", l.ID, i, n)
		}
	}
}

func TestLayoutColumnCounts(t *testing.T) {
	assert.Equal(t, 85, SODLayout.ActiveColumns)
	assert.Equal(t, 183, SODLayout.PaddedColumns)
	assert.Equal(t, 138, HotaLayout.ActiveColumns)
	assert.Equal(t, 139, HotaLayout.WrittenColumns)
	assert.Equal(t, 140, Hota18Layout.ActiveColumns)
	assert.Equal(t, 141, Hota18Layout.WrittenColumns)
}

func TestEnumerationSizes(t *testing.T) {
	assert.Len(t, TownFactionsSOD, 9)
	assert.Len(t, TownFactionsHota, 11)
	assert.Len(t, TownFactionsHota18, 12)
	assert.Len(t, MonsterFactionsSOD, 10)
	assert.Len(t, MonsterFactionsHota, 12)
	assert.Len(t, MonsterFactionsHota18, 13)
	assert.Len(t, TerrainsSOD, 8)
	assert.Len(t, TerrainsHota, 10)
	assert.Len(t, Resources, 7)
}

func TestFactionSetDifferences(t *testing.T) {
	// SOD's town list uses the canonical Conflux name for the Elemental
	// column; Forge exists only in the SOD monster set.
	assert.Contains(t, TownFactionsSOD, "Conflux")
	assert.NotContains(t, TownFactionsSOD, "Elemental")
	assert.Contains(t, MonsterFactionsSOD, "Forge")
	assert.NotContains(t, MonsterFactionsHota, "Forge")
	assert.NotContains(t, MonsterFactionsHota18, "Forge")
	assert.Contains(t, TownFactionsHota18, "Bulwark")
	assert.NotContains(t, TownFactionsHota, "Bulwark")
}

func TestCanonicalHeaders(t *testing.T) {
	for _, id := range []ID{SOD, Hota, Hota18} {
		headers := CanonicalHeaders(id)
		require.Len(t, headers, 3, "%s", id)
		l := LayoutFor(id)
		for i, row := range headers {
			assert.Len(t, row, l.WrittenColumns, "%s header row %d", id, i+1)
		}
	}
}

func TestCanonicalHeadersDistinguishing(t *testing.T) {
	sod := CanonicalHeaders(SOD)
	assert.Equal(t, "Map", sod[0][0])
	assert.Contains(t, sod[2], "Elemental")
	assert.NotContains(t, sod[2], "Cove")

	hota := CanonicalHeaders(Hota)
	assert.Contains(t, hota[2], "Cove")
	assert.NotContains(t, hota[2], "Bulwark")

	hota18 := CanonicalHeaders(Hota18)
	assert.Contains(t, hota18[2], "Bulwark")
}

func TestParseID(t *testing.T) {
	for _, s := range []string{"sod", "hota", "hota18"} {
		id, err := ParseID(s)
		require.NoError(t, err)
		assert.Equal(t, ID(s), id)
	}
	_, err := ParseID("wog")
	assert.Error(t, err)
}

func TestLayoutFor(t *testing.T) {
	assert.Equal(t, &SODLayout, LayoutFor(SOD))
	assert.Equal(t, &HotaLayout, LayoutFor(Hota))
	assert.Equal(t, &Hota18Layout, LayoutFor(Hota18))
	assert.Nil(t, LayoutFor(ID("wog")))
}

package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/h3tc/internal/format"
	"github.com/cory-johannsen/h3tc/internal/schema"
)

func TestParseLegacyStructure(t *testing.T) {
	l := &schema.SODLayout

	header1 := cells(l.ActiveColumns)
	header1[0] = "Map"
	header2 := cells(l.ActiveColumns)
	header3 := cells(l.ActiveColumns)
	header3[l.ZoneID] = "Id"

	row1 := cells(l.ActiveColumns)
	row1[l.MapName] = "duel"
	row1[l.MapMinSize] = "36"
	row1[l.MapMaxSize] = "72"
	row1[l.ZoneID] = "1"
	row1[l.HumanStart] = "x"
	row1[l.TownTypesStart] = "x" // Castle
	row1[l.ConnZone1] = "1"
	row1[l.ConnZone2] = "2"
	row1[l.ConnValue] = "4000"

	row2 := cells(l.ActiveColumns)
	row2[l.ZoneID] = "2"
	row2[l.TreasureStart] = "500"

	row3 := cells(l.ActiveColumns)
	row3[l.MapName] = "arena"
	row3[l.ZoneID] = "1"

	pack, err := format.Parse(schema.SOD, tsv(header1, header2, header3, row1, row2, row3))
	require.NoError(t, err)
	assert.Nil(t, pack.Metadata, "legacy packs carry no pack metadata")
	assert.Nil(t, pack.FieldCounts, "legacy packs carry no field counts")
	require.Len(t, pack.HeaderRows, 3)
	assert.Equal(t, "Map", pack.HeaderRows[0][0])

	require.Len(t, pack.Maps, 2)
	first := pack.Maps[0]
	assert.Equal(t, "duel", first.Name)
	assert.Equal(t, "36", first.MinSize)
	assert.Equal(t, "72", first.MaxSize)
	assert.Nil(t, first.Options, "legacy maps carry no map options")

	require.Len(t, first.Zones, 2)
	assert.Equal(t, "1", first.Zones[0].ID)
	assert.Equal(t, "x", first.Zones[0].HumanStart)
	assert.Equal(t, "x", first.Zones[0].TownTypes["Castle"])
	assert.Equal(t, "", first.Zones[0].TownTypes["Conflux"])
	assert.Nil(t, first.Zones[0].Options, "legacy zones carry no zone options")
	assert.Equal(t, "500", first.Zones[1].TreasureTiers[0].Low)

	require.Len(t, first.Connections, 1)
	conn := first.Connections[0]
	assert.Equal(t, "1", conn.Zone1)
	assert.Equal(t, "2", conn.Zone2)
	assert.Equal(t, "4000", conn.Value)
	assert.Nil(t, conn.Options, "legacy connections carry no option record")

	second := pack.Maps[1]
	assert.Equal(t, "arena", second.Name)
	require.Len(t, second.Zones, 1)
	assert.Empty(t, second.Connections)
}

func TestParseExtendedPackRecords(t *testing.T) {
	data, err := format.Write(schema.Hota, newPack(schema.Hota, "jebus"), format.WriteOptions{})
	require.NoError(t, err)

	pack, err := format.Parse(schema.Hota, data)
	require.NoError(t, err)

	require.NotNil(t, pack.Metadata)
	assert.Equal(t, "jebus", pack.Metadata.Name)
	assert.Equal(t, "test pack", pack.Metadata.Description)
	assert.Equal(t, "jebus", pack.Name, "pack name comes from the metadata row")

	require.NotNil(t, pack.FieldCounts)
	assert.Equal(t, "11", pack.FieldCounts.Town)
	assert.Equal(t, "18", pack.FieldCounts.ZoneNew)

	require.Len(t, pack.Maps, 1)
	m := pack.Maps[0]
	require.NotNil(t, m.Options)
	assert.Equal(t, "x", m.Options.SpecialWeeksDisabled)

	require.Len(t, m.Zones, 2)
	require.NotNil(t, m.Zones[0].Options)
	assert.Equal(t, "3", m.Zones[0].Options.MonstersDispositionStandard)
	assert.Equal(t, "x", m.Zones[0].TownTypes["Cove"])

	require.Len(t, m.Connections, 1)
	require.NotNil(t, m.Connections[0].Options)
	assert.Equal(t, "+", m.Connections[0].Options.Road)
}

func TestParseDataBeforeFirstMap(t *testing.T) {
	l := &schema.SODLayout
	row := cells(l.ActiveColumns)
	row[l.ZoneID] = "1"

	_, err := format.Parse(schema.SOD, tsv(
		cells(l.ActiveColumns), cells(l.ActiveColumns), cells(l.ActiveColumns), row,
	))
	var serr *format.StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 4, serr.Row)
}

func TestParseRejectsMalformedZoneID(t *testing.T) {
	l := &schema.SODLayout
	row := cells(l.ActiveColumns)
	row[l.MapName] = "duel"
	row[l.ZoneID] = "first"

	_, err := format.Parse(schema.SOD, tsv(
		cells(l.ActiveColumns), cells(l.ActiveColumns), cells(l.ActiveColumns), row,
	))
	var perr *format.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "zone id", perr.Field)
	assert.Equal(t, "first", perr.Value)
}

func TestParseRejectsNegativeZoneID(t *testing.T) {
	l := &schema.SODLayout
	row := cells(l.ActiveColumns)
	row[l.MapName] = "duel"
	row[l.ZoneID] = "-1"

	_, err := format.Parse(schema.SOD, tsv(
		cells(l.ActiveColumns), cells(l.ActiveColumns), cells(l.ActiveColumns), row,
	))
	var perr *format.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseRejectsMalformedConnectionRef(t *testing.T) {
	l := &schema.SODLayout
	row := cells(l.ActiveColumns)
	row[l.MapName] = "duel"
	row[l.ConnZone1] = "1"
	row[l.ConnZone2] = "2b"

	_, err := format.Parse(schema.SOD, tsv(
		cells(l.ActiveColumns), cells(l.ActiveColumns), cells(l.ActiveColumns), row,
	))
	var perr *format.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "connection zone 2", perr.Field)
}

func TestParseTooFewRows(t *testing.T) {
	_, err := format.Parse(schema.SOD, tsv([]string{"Map", ""}, []string{"", ""}))
	var serr *format.StructuralError
	require.ErrorAs(t, err, &serr)
}

func TestParseUnknownFormat(t *testing.T) {
	_, err := format.Parse(schema.ID("wog"), tsv([]string{"Map"}))
	assert.Error(t, err)
}

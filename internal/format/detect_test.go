package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/h3tc/internal/format"
	"github.com/cory-johannsen/h3tc/internal/schema"
)

func TestDetectRecognisesWrittenOutput(t *testing.T) {
	for _, id := range []schema.ID{schema.SOD, schema.Hota, schema.Hota18} {
		data, err := format.Write(id, newPack(id, "battle"), format.WriteOptions{})
		require.NoError(t, err, "writing %s pack", id)

		got, err := format.Detect(data)
		require.NoError(t, err, "detecting %s output", id)
		assert.Equal(t, id, got)
	}
}

func TestDetectPaddedLegacyFile(t *testing.T) {
	// Files from the original game editor are right-padded to 183 columns,
	// wider than the HOTA formats; the headers must still win.
	data, err := format.Write(schema.SOD, newPack(schema.SOD, "battle"), format.WriteOptions{LegacyPadding: true})
	require.NoError(t, err)

	got, err := format.Detect(data)
	require.NoError(t, err)
	assert.Equal(t, schema.SOD, got)
}

func TestDetectTownFieldCountTieBreak(t *testing.T) {
	// Headers with no faction names fall through to the town field count in
	// the first data row.
	cases := []struct {
		count string
		want  schema.ID
	}{
		{"11", schema.Hota},
		{"12", schema.Hota18},
	}
	for _, tc := range cases {
		data := tsv(
			[]string{"", ""},
			[]string{"", ""},
			[]string{"Id", "Human start"},
			[]string{tc.count, "10"},
		)
		got, err := format.Detect(data)
		require.NoError(t, err, "town field count %s", tc.count)
		assert.Equal(t, tc.want, got, "town field count %s", tc.count)
	}
}

func TestDetectUnknownContent(t *testing.T) {
	data := tsv(
		[]string{"", ""},
		[]string{"", ""},
		[]string{"Id", "Human start"},
		[]string{"7", "10"},
	)
	_, err := format.Detect(data)
	var derr *format.DetectionError
	require.ErrorAs(t, err, &derr)
}

func TestDetectTooFewRows(t *testing.T) {
	data := tsv(
		[]string{"Map", "Min"},
		[]string{"", ""},
		[]string{"Id", "Human start"},
	)
	_, err := format.Detect(data)
	var serr *format.StructuralError
	require.ErrorAs(t, err, &serr)
}

package format

import (
	"strings"

	"github.com/cory-johannsen/h3tc/internal/schema"
)

// Detect inspects raw file content and decides which format it uses. The
// decision is header-driven, never width-driven: legacy files from the
// original game editor are right-padded with empty trailing cells up to 183
// columns, so SOD files can be wider than the 138/140-column HOTA files.
//
// Decision order:
//  1. fewer than 3 header rows plus 1 data row is a StructuralError;
//  2. header row 1 starting with "Map" is SOD — HOTA files never do;
//  3. a "Bulwark" cell in the column-header row marks HOTA 1.8.x, a "Cove"
//     cell HOTA 1.7.x;
//  4. failing that, the town field count in the first data row ("12" vs
//     "11") decides the HOTA sub-version;
//  5. anything else is a DetectionError.
//
// File extension never participates; it is at most a caller-side hint.
func Detect(data []byte) (schema.ID, error) {
	rows, err := readRows(data)
	if err != nil {
		return "", err
	}
	if len(rows) < 4 {
		return "", &StructuralError{Reason: "template needs 3 header rows and at least 1 data row"}
	}

	if len(rows[0]) > 0 && strings.TrimSpace(rows[0][0]) == "Map" {
		return schema.SOD, nil
	}

	// Extended family: the column-header row names every town faction.
	for _, cell := range rows[2] {
		if strings.TrimSpace(cell) == "Bulwark" {
			return schema.Hota18, nil
		}
	}
	for _, cell := range rows[2] {
		if strings.TrimSpace(cell) == "Cove" {
			return schema.Hota, nil
		}
	}

	if len(rows[3]) > 0 {
		switch strings.TrimSpace(rows[3][0]) {
		case schema.Hota18TownFieldCount:
			return schema.Hota18, nil
		case schema.HotaTownFieldCount:
			return schema.Hota, nil
		}
	}

	return "", &DetectionError{Reason: "header rows match no known template format"}
}

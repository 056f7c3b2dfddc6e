package metrics

import "strconv"

// The functions below define the canonical string form of non-string
// label values. Every label value must be produced via these functions
// to avoid series fragmentation by inconsistent formatting.

func formatBlockID(blockID uint64) string {
	return strconv.FormatUint(blockID, 10)
}

func formatSuccess(success bool) string {
	return strconv.FormatBool(success)
}

// the labels package normalises and truncates the gene names used as column labels
package labels

import (
	"log"
	"strings"
)

// DefaultMaxLength is the hard length limit applied when a caller has no
// layout-specific limit of its own
const DefaultMaxLength = 20

// minPrefixLen is the shortest prefix worth keeping when cutting a name at a comma
const minPrefixLen = 5

// Format normalises a gene name for labelling: spaces and double quotes are
// stripped, over-long names are cut at the first comma past the gene symbol
// (keeping the meaningful prefix of clinical style annotations), and anything
// still longer than maxLength is hard truncated. The function is idempotent.
func Format(geneName string, maxLength int) string {
	geneName = strings.Replace(geneName, " ", "", -1)
	geneName = strings.Replace(geneName, "\"", "", -1)
	if len(geneName) > maxLength-4 {
		// only cut at a comma that leaves a usable prefix behind
		if commaIdx := indexFrom(geneName, ',', minPrefixLen); commaIdx != -1 {
			log.Printf("shortened long gene name for labelling: %v", geneName)
			geneName = geneName[:commaIdx]
		}
	}
	if len(geneName) > maxLength {
		// cut all names which are still too long
		geneName = geneName[:maxLength]
	}
	return geneName
}

// indexFrom finds the first occurrence of a byte at or after a start index
func indexFrom(s string, b byte, start int) int {
	if start >= len(s) {
		return -1
	}
	if idx := strings.IndexByte(s[start:], b); idx != -1 {
		return start + idx
	}
	return -1
}

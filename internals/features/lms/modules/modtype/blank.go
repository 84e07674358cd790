// file: internals/features/lms/modules/modtype/blank.go
package modtype

import "strings"

// BlankMarker is the literal token authors place inside a fill-in-blank
// question text where an answer goes.
const BlankMarker = "[blank]"

// ScanBlankPositions returns the byte offsets of every BlankMarker occurrence
// in the question text, in order. Blank positions are recomputed by rescanning
// on every edit rather than tracked through anchors; when two blanks share
// identical surrounding text the pairing with answers is positional only.
func ScanBlankPositions(question string) []BlankPosition {
	var out []BlankPosition
	off := 0
	for {
		i := strings.Index(question[off:], BlankMarker)
		if i < 0 {
			return out
		}
		start := off + i
		out = append(out, BlankPosition{Start: start, End: start + len(BlankMarker)})
		off = start + len(BlankMarker)
	}
}

// RecomputeBlankPositions reassigns marker offsets to the question's blanks
// after a text edit, preserving ids and answers by order. Extra blanks beyond
// the number of markers keep their answers but get a zeroed position; callers
// surface that as a validation problem in the editor.
func RecomputeBlankPositions(question string, blanks []Blank) []Blank {
	positions := ScanBlankPositions(question)
	out := make([]Blank, len(blanks))
	copy(out, blanks)
	for i := range out {
		if i < len(positions) {
			out[i].Position = positions[i]
		} else {
			out[i].Position = BlankPosition{}
		}
	}
	return out
}

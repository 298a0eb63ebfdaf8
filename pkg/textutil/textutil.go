// Package textutil holds small text-layout helpers for help rendering.
package textutil

import "strings"

// Wrap breaks text into lines of at most width characters, splitting on spaces.
// A single word longer than width gets its own line rather than being broken.
func Wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		switch {
		case line.Len() == 0:
			line.WriteString(word)
		case line.Len()+1+len(word) > width:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
		default:
			line.WriteString(" ")
			line.WriteString(word)
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

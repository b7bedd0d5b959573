// Package grapheme provides grapheme-cluster helpers over byte offsets,
// shared by editor movement and rendering.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// NextBoundary returns the byte offset of the next cluster boundary after
// off, or len(text) when off is at or past the end.
func NextBoundary(text string, off int) int {
	if off < 0 {
		off = 0
	}
	if off >= len(text) {
		return len(text)
	}
	rest := text[off:]
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
	return off + len(cluster)
}

// PrevBoundary returns the byte offset of the cluster boundary before off,
// or 0 when off is at or before the start.
func PrevBoundary(text string, off int) int {
	if off > len(text) {
		off = len(text)
	}
	if off <= 0 {
		return 0
	}
	prev := 0
	state := -1
	for pos := 0; pos < off; {
		cluster, _, _, next := uniseg.FirstGraphemeClusterInString(text[pos:], state)
		if cluster == "" {
			break
		}
		prev = pos
		pos += len(cluster)
		state = next
	}
	return prev
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// IsSpace reports whether the cluster consists of whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Width returns the rendered cell width of text.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

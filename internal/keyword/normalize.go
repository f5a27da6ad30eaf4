// Package keyword reduces listing keywords and query words to a canonical
// stemmed form so that inflected variants match each other.
package keyword

import (
	"strings"

	"github.com/blevesearch/segment"
	"github.com/kljensen/snowball/english"
)

// Normalize tokenizes raw on Unicode word boundaries, stems each word with
// the English Porter2 algorithm and returns the first stemmed token.
// Normalize(Normalize(s)) == Normalize(s) for every s.
// When raw contains no word tokens it is returned unchanged.
//
// Only the first token survives: "Running Shoes" normalizes to "run".
func Normalize(raw string) string {
	tokens := Stems(raw)
	if len(tokens) == 0 {
		return raw
	}
	return tokens[0]
}

// Stems returns every stemmed word token of raw in order.
func Stems(raw string) []string {
	seg := segment.NewWordSegmenterDirect([]byte(raw))

	var out []string
	for seg.Segment() {
		if seg.Type() == segment.None {
			continue
		}
		word := strings.ToLower(string(seg.Bytes()))
		out = append(out, stem(word))
	}
	if seg.Err() != nil {
		return nil
	}
	return out
}

// stem applies Porter2 until the word stops changing. A single pass is not
// stable ("agreed" -> "agre" -> "agr"). Stems never grow, so len(word)+1
// passes always reach the fixed point.
func stem(word string) string {
	for range len(word) + 1 {
		next := english.Stem(word, true)
		if next == word {
			break
		}
		word = next
	}
	return word
}

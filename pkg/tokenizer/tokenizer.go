// Package tokenizer splits raw input lines into tokens for the resolver.
//
// It is deliberately not a POSIX lexer: the only structure it understands is
// matching pairs of configurable quote characters. Quoted regions are kept
// atomic, everything else is split on ASCII spaces.
package tokenizer

import "strings"

// DefaultQuotes are the quote characters used when a caller does not
// configure its own set.
var DefaultQuotes = []rune{'\'', '"'}

// Tokenization is the ephemeral result of tokenizing one line.
type Tokenization struct {
	// Tokens are the split tokens, in order. Quoted regions appear as a
	// single token with the quote delimiters stripped.
	Tokens []string

	// TrailingSpace reports whether the raw line ended in a literal space.
	// Completion uses this to distinguish "finish the current word" from
	// "start the next one".
	TrailingSpace bool
}

type quoteLoc struct {
	pos       int
	quotation rune
}

type quotePair struct {
	start int
	end   int
}

type blobKind int

const (
	blobNormal blobKind = iota
	blobQuoted
)

type blob struct {
	kind blobKind
	text string
}

// Tokenize splits line into tokens, treating regions wrapped in matching
// quote characters as atomic. Unmatched quote characters degrade to ordinary
// text; they are never an error.
func Tokenize(line string, quoteChars []rune) Tokenization {
	blobs := splitIntoQuoteBlobs(line, quoteChars)

	return Tokenization{
		Tokens:        splitBySpace(blobs),
		TrailingSpace: strings.HasSuffix(line, " "),
	}
}

// findQuotes locates every occurrence of a configured quote character.
func findQuotes(line string, quoteChars []rune) []quoteLoc {
	var locs []quoteLoc
	for i, ch := range line {
		for _, q := range quoteChars {
			if ch == q {
				locs = append(locs, quoteLoc{pos: i, quotation: ch})
				break
			}
		}
	}
	return locs
}

// findQuotePairs pairs quote locations greedily left to right: the earliest
// unpaired mark scans forward for the next mark of the same kind. Quote
// characters of a different kind in between are skipped as content; an
// opener with no same-kind closer stays unpaired.
func findQuotePairs(locs []quoteLoc) []quotePair {
	var pairs []quotePair

	startIdx := 0
	for startIdx < len(locs) {
		start := locs[startIdx]
		nextIdx := -1
		for i := startIdx + 1; i < len(locs); i++ {
			if locs[i].quotation == start.quotation {
				pairs = append(pairs, quotePair{start: start.pos, end: locs[i].pos})
				nextIdx = i + 1
				break
			}
			if nextIdx == -1 {
				nextIdx = i
			}
		}
		if nextIdx == -1 {
			break
		}
		startIdx = nextIdx
	}

	return pairs
}

// blobsFromPairs slices the line into Normal/Quoted blobs covering it
// contiguously. Quoted blobs carry their content with the delimiters
// stripped.
func blobsFromPairs(line string, pairs []quotePair) []blob {
	var blobs []blob

	cur := 0
	for _, pair := range pairs {
		if cur != pair.start {
			blobs = append(blobs, blob{kind: blobNormal, text: line[cur:pair.start]})
		}
		inner := line[pair.start : pair.end+1]
		blobs = append(blobs, blob{kind: blobQuoted, text: trimDelimiters(inner)})
		cur = pair.end + 1
	}

	if cur != len(line) {
		blobs = append(blobs, blob{kind: blobNormal, text: line[cur:]})
	}

	return blobs
}

// trimDelimiters drops the first and last byte of a quoted region. Quote
// characters are constrained to single-byte runes in practice, but slicing by
// rune keeps this safe for any configured character.
func trimDelimiters(quoted string) string {
	runes := []rune(quoted)
	if len(runes) < 2 {
		return quoted
	}
	return string(runes[1 : len(runes)-1])
}

func splitIntoQuoteBlobs(line string, quoteChars []rune) []blob {
	locs := findQuotes(line, quoteChars)
	pairs := findQuotePairs(locs)

	if len(pairs) == 0 {
		return []blob{{kind: blobNormal, text: line}}
	}

	return blobsFromPairs(line, pairs)
}

// splitBySpace splits Normal blobs on ASCII space, dropping empty fragments,
// and emits Quoted blobs verbatim, even when empty or space-containing.
func splitBySpace(blobs []blob) []string {
	var tokens []string
	for _, b := range blobs {
		if b.kind == blobQuoted {
			tokens = append(tokens, b.text)
			continue
		}
		for _, part := range strings.Split(b.text, " ") {
			if part != "" {
				tokens = append(tokens, part)
			}
		}
	}
	return tokens
}

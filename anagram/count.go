package anagram

import (
	"fmt"
	"iter"
)

// Result is the tally of one pass over a sequence of lines.
type Result struct {
	Count   int    // number of pairs that are anagrams
	Pairs   []Pair // matching pairs in input order; only if collected
	Lines   int    // lines read
	Skipped int    // lines that did not parse as a pair
}

// Count classifies every line of seq and tallies the anagram pairs.
// If collect is set, the matching pairs are retained in Result.Pairs.
//
// The first error from seq stops the pass; the partial result is discarded.
func Count(seq iter.Seq2[string, error], collect bool) (*Result, error) {
	var res Result
	for line, err := range seq {
		if err != nil {
			return nil, fmt.Errorf("after line %d: %w", res.Lines, err)
		}
		res.Lines++
		p, ok := ParsePair(line)
		if !ok {
			res.Skipped++
			continue
		}
		if !p.IsAnagram() {
			continue
		}
		res.Count++
		if collect {
			res.Pairs = append(res.Pairs, p)
		}
	}
	return &res, nil
}

package anagram

import "strings"

// A Pair is the two words of one input line.
type Pair struct {
	Word1 string
	Word2 string
}

func (p Pair) String() string { return p.Word1 + ":" + p.Word2 }

// ParsePair splits line around its first colon and trims both halves.
// Any further colons stay in Word2. It reports false if the line has no
// colon or if either half is empty after trimming.
func ParsePair(line string) (Pair, bool) {
	w1, w2, ok := strings.Cut(line, ":")
	if !ok {
		return Pair{}, false
	}
	p := Pair{
		Word1: strings.TrimSpace(w1),
		Word2: strings.TrimSpace(w2),
	}
	if p.Word1 == "" || p.Word2 == "" {
		return Pair{}, false
	}
	return p, true
}

// IsAnagram reports whether the two words of p are anagrams.
func (p Pair) IsAnagram() bool { return IsAnagram(p.Word1, p.Word2) }

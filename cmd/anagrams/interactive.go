package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cespare/anagrams/anagram"
	"github.com/chzyer/readline"
	"github.com/kr/pretty"
)

func interactive(opts *options) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     opts.history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer l.Close()

	s := &session{w: l.Stdout()}
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			s.printTotal()
			return nil
		default:
			return err
		}
		s.handle(line)
	}
}

// A session classifies pairs typed one at a time and keeps a running total.
type session struct {
	w     io.Writer
	count int
}

func (s *session) handle(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	p, ok := anagram.ParsePair(line)
	if !ok {
		fmt.Fprintln(s.w, "want word1:word2")
		return
	}
	if p.IsAnagram() {
		s.count++
		fmt.Fprintf(s.w, "%s: anagram\n", p)
		return
	}
	fmt.Fprintf(s.w, "%s: not anagram\n", p)
	fmt.Fprintf(s.w, "  %s: %s\n", p.Word1, pretty.Sprint(letterCounts(p.Word1)))
	fmt.Fprintf(s.w, "  %s: %s\n", p.Word2, pretty.Sprint(letterCounts(p.Word2)))
}

func (s *session) printTotal() {
	fmt.Fprintf(s.w, "\nTotal anagram pairs found: %d\n", s.count)
}

// letterCounts is the tally of word keyed by strings, which print more
// legibly than runes.
func letterCounts(word string) map[string]int {
	m := make(map[string]int)
	for r, n := range anagram.TallyOf(word) {
		m[string(r)] = n
	}
	return m
}

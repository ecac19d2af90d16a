package anagram

import (
	"errors"
	"iter"
	"testing"

	"github.com/kr/pretty"
)

func seqOf(lines []string, err error) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, line := range lines {
			if !yield(line, nil) {
				return
			}
		}
		if err != nil {
			yield("", err)
		}
	}
}

func TestCount(t *testing.T) {
	lines := []string{
		"listen:silent",
		"hello:world",
		"state:taste",
		"justoneword",
		"",
		"Dusty : Study",
		"empty:",
	}
	got, err := Count(seqOf(lines, nil), false)
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{Count: 3, Lines: 7, Skipped: 3}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("got %# v; want %# v\n%s", pretty.Formatter(got), pretty.Formatter(want), diff)
	}

	got, err = Count(seqOf(lines, nil), true)
	if err != nil {
		t.Fatal(err)
	}
	want.Pairs = []Pair{
		{"listen", "silent"},
		{"state", "taste"},
		{"Dusty", "Study"},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("got %# v; want %# v\n%s", pretty.Formatter(got), pretty.Formatter(want), diff)
	}
}

func TestCountEmpty(t *testing.T) {
	got, err := Count(seqOf(nil, nil), true)
	if err != nil {
		t.Fatal(err)
	}
	if got.Count != 0 || got.Lines != 0 || got.Pairs != nil {
		t.Errorf("got %+v; want zero result", got)
	}
}

func TestCountError(t *testing.T) {
	errBoom := errors.New("boom")
	res, err := Count(seqOf([]string{"listen:silent", "state:taste"}, errBoom), false)
	if !errors.Is(err, errBoom) {
		t.Fatalf("got err %v; want %v", err, errBoom)
	}
	if res != nil {
		t.Errorf("got partial result %+v; want nil", res)
	}
	if got, want := err.Error(), "after line 2: boom"; got != want {
		t.Errorf("got error %q; want %q", got, want)
	}
}

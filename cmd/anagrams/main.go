// Anagrams counts the lines of a file that hold a pair of anagrams.
//
// Each line of the input has the form
//
//	word1:word2
//
// The line is split around its first colon and both words are trimmed.
// Lines that don't split into two non-empty words are skipped. Words are
// compared without regard to case.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/cespare/anagrams/anagram"
	"github.com/cespare/anagrams/lines"
	"github.com/dustin/go-humanize"
)

var errUsage = errors.New("please provide a file path as an argument")

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	list        bool
	verbose     bool
	interactive bool
	maxLine     byteSize
	history     string
	fgprof      string
	config      string
}

func (o *options) register(flags *flag.FlagSet) {
	o.maxLine = lines.DefaultMaxLineBytes
	flags.BoolVar(&o.list, "list", false, "Print each matching pair")
	flags.BoolVar(&o.verbose, "v", false, "Print a summary of the input to stderr")
	flags.BoolVar(&o.interactive, "i", false, "Read pairs interactively rather than from a file")
	flags.Var(&o.maxLine, "max-line", "Longest accepted input `size` (e.g. 4MiB)")
	flags.StringVar(&o.history, "history", "", "History `file` for interactive mode")
	flags.StringVar(&o.fgprof, "fgprof", "", "Write a wall-clock profile to `file`")
	flags.StringVar(&o.config, "config", "", "Read settings from INI `file`")
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	flags := flag.NewFlagSet("anagrams", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: anagrams [flags] file")
		flags.PrintDefaults()
	}
	var opts options
	opts.register(flags)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if opts.config != "" {
		if err := loadConfig(opts.config, flags); err != nil {
			return err
		}
	}

	if opts.fgprof != "" {
		stop, profErr := startProfile(opts.fgprof)
		if profErr != nil {
			return profErr
		}
		defer func() {
			if stopErr := stop(); stopErr != nil && err == nil {
				err = stopErr
			}
		}()
	}

	if opts.interactive {
		return interactive(&opts)
	}

	if flags.NArg() < 1 {
		flags.Usage()
		return errUsage
	}
	name := flags.Arg(0)
	info, err := os.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file does not exist: %s", name)
		}
		return fmt.Errorf("error processing file: %w", err)
	}

	seq := lines.File(name, &lines.Options{MaxLineBytes: int(opts.maxLine)})
	res, err := anagram.Count(seq, opts.list)
	if err != nil {
		return fmt.Errorf("error processing file: %w", err)
	}

	for _, p := range res.Pairs {
		fmt.Fprintln(stdout, p)
	}
	if opts.verbose {
		fmt.Fprintf(stderr, "%s: read %s lines (%s); skipped %s\n",
			name,
			humanize.Comma(int64(res.Lines)),
			humanize.Bytes(uint64(info.Size())),
			humanize.Comma(int64(res.Skipped)),
		)
	}
	fmt.Fprintf(stdout, "\nTotal anagram pairs found: %d\n", res.Count)
	return nil
}

// byteSize is a flag.Value holding a size in bytes written in a
// human-friendly form such as "64 KiB" or "1MB".
type byteSize int

func (b *byteSize) String() string {
	if b == nil {
		return ""
	}
	return humanize.IBytes(uint64(*b))
}

func (b *byteSize) Set(s string) error {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	if n == 0 || n > 1<<30 {
		return fmt.Errorf("size %q out of range", s)
	}
	*b = byteSize(n)
	return nil
}

// Package lines provides lazy sequences of text lines read from files and
// other readers.
//
// A sequence owns its underlying reader: the reader is released when the
// sequence is exhausted, when the consumer stops ranging early, or when a
// read fails.
package lines

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"os"
)

// DefaultMaxLineBytes is the longest line accepted when Options does not
// say otherwise.
const DefaultMaxLineBytes = 1 << 20

// Options configures a line sequence. A nil *Options uses the defaults.
type Options struct {
	// MaxLineBytes bounds the length of a single line, including its
	// terminator. A longer line ends the sequence with bufio.ErrTooLong.
	MaxLineBytes int
}

func (o *Options) maxLineBytes() int {
	if o == nil || o.MaxLineBytes <= 0 {
		return DefaultMaxLineBytes
	}
	return o.MaxLineBytes
}

// File returns the lines of the named file. The file is opened when the
// sequence is first ranged over and closed before the range statement
// finishes. Each range reads the file again from the start.
//
// Errors, including a failure to open the file, are yielded once as
// ("", err) and end the sequence.
func File(name string, opts *Options) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(name)
		if err != nil {
			yield("", err)
			return
		}
		adviseSequential(f)
		ReadCloser(f, opts)(yield)
	}
}

// ReadCloser returns the lines read from rc, closing rc on every exit path.
func ReadCloser(rc io.ReadCloser, opts *Options) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		defer rc.Close()
		Reader(rc, opts)(yield)
	}
}

// Reader returns the lines read from r. Unlike ReadCloser, it never closes r.
func Reader(r io.Reader, opts *Options) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		maxLine := opts.maxLineBytes()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, min(4096, maxLine)), maxLine)
		scanner.Split(ScanLines)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}

// ScanLines is a bufio.SplitFunc like bufio.ScanLines except that it treats
// "\n", "\r\n", and a lone "\r" alike as line terminators. A "\r\n" pair is
// always a single terminator, even when it straddles two reads.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0:
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data):
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	case atEOF:
		return i + 1, data[:i], nil
	}
	// Trailing '\r': wait to see whether a '\n' follows.
	return 0, nil, nil
}

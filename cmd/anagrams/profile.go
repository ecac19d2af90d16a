package main

import (
	"fmt"
	"os"

	"github.com/felixge/fgprof"
)

// startProfile begins a wall-clock profile written in pprof format to the
// named file. The returned function stops the profile and closes the file.
func startProfile(name string) (stop func() error, err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("cannot create profile: %s", err)
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return fmt.Errorf("error writing profile: %s", err)
		}
		return f.Close()
	}, nil
}

//go:build !linux

package lines

import "os"

func adviseSequential(f *os.File) {}

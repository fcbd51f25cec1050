package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// SupportsANSICodes reports whether stdout is a terminal that should get
// colour. NO_COLOR turns colour off.
func SupportsANSICodes() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

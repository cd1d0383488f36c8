package cliutil

import "github.com/mattn/go-isatty"

// IsTty reports whether fd is attached to a terminal.
func IsTty(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY returns true when stdin and stdout are connected to a terminal.
func IsTTY() bool {
	in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return in && out
}

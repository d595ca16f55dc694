// Package util holds small terminal and filesystem helpers shared by the commands and interfaces.
package util

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/animeflow/animeflow/filesystem"
	"golang.org/x/term"
)

// Quantify formats count with the singular or plural noun.
func Quantify(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", count, noun)
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Ellipsis shortens s to at most max runes, marking the cut with "…".
func Ellipsis(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// TerminalSize returns the size of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen wipes the terminal and moves the cursor home. It does nothing
// when stdout is not a terminal.
func ClearScreen() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	fmt.Fprint(os.Stdout, "\033[H\033[2J")
}

// PrintErasable prints msg on the current line and returns a func that blanks it again.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", utf8.RuneCountInString(msg)))
	}
}

// Ignore runs f and drops its error. Used for best-effort background work.
func Ignore(f func() error) {
	_ = f()
}

// Delete removes path, recursing into directories.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/hako/durafmt"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
	"golang.org/x/xerrors"
)

// Set the global default, to be overridden by individual cli flags in order
func init() {
	color.NoColor = os.Getenv("GOLOG_LOG_FMT") != "color" &&
		!isatty.IsTerminal(os.Stdout.Fd()) &&
		!isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Took formats the duration of a finished operation.
func Took(start, end time.Time) string {
	if end.Before(start) {
		return "-"
	}
	return durafmt.Parse(end.Sub(start).Round(time.Millisecond)).LimitFirstN(2).String()
}

// ReadPassphrase reads the passphrase from the named environment variable,
// prompting on the terminal when the variable is empty.
func ReadPassphrase(envVar string, prompt string) (string, error) {
	if pass := os.Getenv(envVar); pass != "" {
		return pass, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", xerrors.Errorf("no passphrase: set %s or run in a terminal", envVar)
	}

	fmt.Fprint(os.Stderr, prompt) // nolint:errcheck
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // nolint:errcheck
	if err != nil {
		return "", xerrors.Errorf("reading passphrase: %w", err)
	}
	return string(b), nil
}

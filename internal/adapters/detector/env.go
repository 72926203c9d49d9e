// Package detector inspects the process environment to pick CLI defaults.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat is the encoding of log records on stderr.
type LogFormat int

const (
	// FormatAuto picks a format from the environment.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored, human readable lines.
	FormatPretty
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// DetectLogFormat returns FormatJSON when f is not a terminal or a CI
// environment is detected, and FormatPretty otherwise. Spawned workers log to
// a file and therefore default to JSON.
func DetectLogFormat(f *os.File) LogFormat {
	isTTY := term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
	if !isTTY || isCI() {
		return FormatJSON
	}
	return FormatPretty
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveLogFormat applies the user's --log-format flag to the detected format.
// flag should be one of "auto", "pretty", "json" or empty.
func ResolveLogFormat(detected LogFormat, flag string) LogFormat {
	switch flag {
	case "pretty":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return detected
	}
}

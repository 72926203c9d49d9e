// Package style holds the colors and glyphs shared by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs. Synced marks a project whose snapshot is built, Running and
// Stopped mark the worker state.
const (
	Synced  = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Running = "●"
	Stopped = "○"
	Arrow   = "→"
)

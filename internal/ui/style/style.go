// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
)

// Text styles.
var (
	// Success renders freshly generated results.
	Success = lipgloss.NewStyle().Foreground(Green)
	// Cached renders results served from the cache.
	Cached = lipgloss.NewStyle().Foreground(Iris)
	// Muted renders secondary details such as paths and sizes.
	Muted = lipgloss.NewStyle().Foreground(Slate)
)

package tui

// Color constants for the taskwise TUI theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383"
	ColorHelpText      = "240"

	// Accent Colors
	ColorAccentMain   = "#2563EB" // Active borders, selected row
	ColorAccentBright = "#60A5FA" // Highlights, current view tab

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Completed tasks
	ColorWarning = "#F59E0B" // Overdue due dates
)

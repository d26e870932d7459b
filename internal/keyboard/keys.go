package keyboard

// Keys holds all keyboard shortcut configurations for the preset picker
type Keys struct {
	// Navigation
	Up         string // Move selection up
	Down       string // Move selection down
	JumpTop    string // Jump to top
	JumpBottom string // Jump to bottom

	// Actions
	Select string // Choose the highlighted preset
	Filter string // Start fuzzy filtering
	Copy   string // Copy the highlighted preset's tokens

	// Global
	Quit string // Quit without choosing
	Back string // Cancel filter, or quit without choosing
	Help string // Toggle full help
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		// Navigation
		Up:         "k",
		Down:       "j",
		JumpTop:    "g",
		JumpBottom: "G",

		// Actions
		Select: "enter",
		Filter: "/",
		Copy:   "y",

		// Global
		Quit: "ctrl+c",
		Back: "esc",
		Help: "?",
	}
}

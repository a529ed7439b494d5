package config

// DisplayConfig holds settings for drawing the board as text.
type DisplayConfig struct {
	// ShowCoordinates prints rank numbers and file letters around the grid
	ShowCoordinates bool

	// ClearScreen clears the terminal before each board is drawn
	ClearScreen bool

	// EmptySquare is the glyph used for an empty square
	EmptySquare byte

	// JSON writes one JSON snapshot per position instead of a text board
	JSON bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		ShowCoordinates: true,
		ClearScreen:     false,
		EmptySquare:     '.',
	}
}

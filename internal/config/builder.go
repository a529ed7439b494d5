package config

import (
	"io"

	"github.com/lgbarn/duel-chess/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
	err error
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config, or the first error met while building.
func (b *ConfigBuilder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithMode sets the front-end mode.
func (b *ConfigBuilder) WithMode(mode Mode) *ConfigBuilder {
	b.cfg.Mode = mode
	return b
}

// WithRulePreset resets the rule switches from a named preset.
func (b *ConfigBuilder) WithRulePreset(name string) *ConfigBuilder {
	if err := b.cfg.Rules.ApplyPreset(name); err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// WithBishopPathCheck toggles bishop path blocking.
func (b *ConfigBuilder) WithBishopPathCheck(enabled bool) *ConfigBuilder {
	b.cfg.Rules.BishopPathCheck = enabled
	return b
}

// WithPawnDoubleStepFromHome toggles the home-row restriction.
func (b *ConfigBuilder) WithPawnDoubleStepFromHome(enabled bool) *ConfigBuilder {
	b.cfg.Rules.PawnDoubleStepFromHome = enabled
	return b
}

// WithCommitKingCapture toggles playing out a king capture.
func (b *ConfigBuilder) WithCommitKingCapture(enabled bool) *ConfigBuilder {
	b.cfg.Rules.CommitKingCapture = enabled
	return b
}

// WithCoordinates toggles rank and file labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowCoordinates = enabled
	return b
}

// WithClearScreen toggles clearing the terminal before each board.
func (b *ConfigBuilder) WithClearScreen(enabled bool) *ConfigBuilder {
	b.cfg.Display.ClearScreen = enabled
	return b
}

// WithJSON switches board output to JSON snapshots.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Display.JSON = enabled
	return b
}

// WithServerAddr sets the listen address.
func (b *ConfigBuilder) WithServerAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithMaxRooms sets the room cap.
func (b *ConfigBuilder) WithMaxRooms(n int) *ConfigBuilder {
	b.cfg.Server.MaxRooms = n
	return b
}

// WithReleaseMode toggles gin release mode.
func (b *ConfigBuilder) WithReleaseMode(enabled bool) *ConfigBuilder {
	b.cfg.Server.ReleaseMode = enabled
	return b
}

// WithStartPosition sets the position new games begin from. An empty
// placement keeps the standard position.
func (b *ConfigBuilder) WithStartPosition(placement string, turn chess.Colour) *ConfigBuilder {
	b.cfg.Start.Placement = placement
	b.cfg.Start.Turn = turn
	return b
}

// WithInput sets the input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

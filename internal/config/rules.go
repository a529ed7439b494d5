package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/duel-chess/internal/engine"
	"github.com/lgbarn/duel-chess/internal/errors"
)

// Rule set preset names.
const (
	LiteralPreset  = "literal"
	StandardPreset = "standard"
)

// RulesConfig holds the movement rule switches.
type RulesConfig struct {
	// Preset is the name the switches were last reset from.
	Preset string

	// BishopPathCheck makes bishops respect blockers
	BishopPathCheck bool

	// PawnDoubleStepFromHome restricts the two-square advance to the home row
	PawnDoubleStepFromHome bool

	// CommitKingCapture moves the capturing piece onto a taken king
	CommitKingCapture bool
}

// NewRulesConfig creates a RulesConfig for the literal rule set.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{Preset: LiteralPreset}
}

// ApplyPreset resets every switch from a named preset.
func (r *RulesConfig) ApplyPreset(name string) error {
	switch strings.ToLower(name) {
	case LiteralPreset:
		r.set(engine.Literal)
		r.Preset = LiteralPreset
	case StandardPreset:
		r.set(engine.Standard)
		r.Preset = StandardPreset
	default:
		return fmt.Errorf("unknown rule set %q (want %s or %s): %w",
			name, LiteralPreset, StandardPreset, errors.ErrInvalidConfig)
	}
	return nil
}

func (r *RulesConfig) set(rules engine.Rules) {
	r.BishopPathCheck = rules.BishopPathCheck
	r.PawnDoubleStepFromHome = rules.PawnDoubleStepFromHome
	r.CommitKingCapture = rules.CommitKingCapture
}

// Engine returns the engine rule set these switches describe.
func (r *RulesConfig) Engine() engine.Rules {
	return engine.Rules{
		BishopPathCheck:        r.BishopPathCheck,
		PawnDoubleStepFromHome: r.PawnDoubleStepFromHome,
		CommitKingCapture:      r.CommitKingCapture,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	switch r.Preset {
	case LiteralPreset, StandardPreset, "":
		return nil
	}
	return fmt.Errorf("unknown rule set %q: %w", r.Preset, errors.ErrInvalidConfig)
}

// Describe lists the switches that differ from the literal rule set.
func (r *RulesConfig) Describe() string {
	var on []string
	if r.BishopPathCheck {
		on = append(on, "bishop-path")
	}
	if r.PawnDoubleStepFromHome {
		on = append(on, "pawn-home")
	}
	if r.CommitKingCapture {
		on = append(on, "commit-king-capture")
	}
	if len(on) == 0 {
		return LiteralPreset
	}
	return strings.Join(on, ",")
}

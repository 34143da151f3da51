// internal/game/types.go
//
// Core type definitions for the combat session.
// Defines:
//   - Phase: the linear lifecycle of a session (empty → populated → running → ended).
//   - Loadout: one item handed to one player by name.
//   - Summary: the outcome of a finished run.
//   - Option: functional options for NewSession.

package game

import (
	"github.com/rs/zerolog"

	"github.com/robalobadob/arena/internal/entity"
	"github.com/robalobadob/arena/internal/narrate"
)

// DefaultHitDamage is the fixed damage every player deals per hit.
const DefaultHitDamage = 10

// Phase is where a session is in its lifecycle. Phases only move forward.
type Phase int

const (
	PhaseEmpty     Phase = iota // nothing added yet
	PhasePopulated              // at least one player or enemy added
	PhaseRunning                // Run in progress
	PhaseEnded                  // Run finished
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhasePopulated:
		return "populated"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Loadout hands Item to the first player named Player.
type Loadout struct {
	Player string
	Item   entity.Item
}

// Summary describes a finished run.
type Summary struct {
	SessionID string
	Hits      int      // attacks made, across all enemies
	Defeated  []string // enemies defeated, in the order they fell
	Standing  []string // enemies left standing (no players, or no progress in a round)
}

// Option configures a Session.
type Option func(*Session)

// WithNarrator prints flavor text through n.
func WithNarrator(n *narrate.Narrator) Option {
	return func(s *Session) { s.narrator = n }
}

// WithHitDamage overrides DefaultHitDamage. Values below 1 are ignored so
// every round of combat makes progress.
func WithHitDamage(n int) Option {
	return func(s *Session) {
		if n >= 1 {
			s.hitDamage = n
		}
	}
}

// WithLogger sets the base logger; the session adds its ID.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

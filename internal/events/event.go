// internal/events/event.go
//
// Game lifecycle events broadcast by a session.
// An Event is an immutable tagged value: Kind selects the variant, Subject
// names the player or enemy it is about (if any) and Amount carries damage
// for PlayerDamaged.

package events

import "fmt"

// Kind tags the event variant.
type Kind string

const (
	KindPlayerJoined  Kind = "player_joined"
	KindEnemySpawned  Kind = "enemy_spawned"
	KindPlayerDamaged Kind = "player_damaged"
	KindEnemyDefeated Kind = "enemy_defeated"
	KindGameStarted   Kind = "game_started"
	KindGameEnded     Kind = "game_ended"
)

// Event is a single lifecycle notification.
type Event struct {
	Kind    Kind   `json:"kind"`
	Subject string `json:"subject,omitempty"`
	Amount  int    `json:"amount,omitempty"`
}

func PlayerJoined(name string) Event  { return Event{Kind: KindPlayerJoined, Subject: name} }
func EnemySpawned(name string) Event  { return Event{Kind: KindEnemySpawned, Subject: name} }
func EnemyDefeated(name string) Event { return Event{Kind: KindEnemyDefeated, Subject: name} }
func GameStarted() Event              { return Event{Kind: KindGameStarted} }
func GameEnded() Event                { return Event{Kind: KindGameEnded} }

func PlayerDamaged(name string, amount int) Event {
	return Event{Kind: KindPlayerDamaged, Subject: name, Amount: amount}
}

func (e Event) String() string {
	switch e.Kind {
	case KindPlayerDamaged:
		return fmt.Sprintf("%s(%s, %d)", e.Kind, e.Subject, e.Amount)
	case KindGameStarted, KindGameEnded:
		return string(e.Kind)
	default:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Subject)
	}
}

package events

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/robalobadob/arena/internal/narrate"
)

// PlayerObserver is the per-player listener a session registers under the
// player's name. It reacts to events about itself and to every spawn, defeat
// and lifecycle event.
type PlayerObserver struct {
	name     string
	narrator *narrate.Narrator
}

// NewPlayerObserver returns an observer for player name. A nil narrator
// keeps it quiet.
func NewPlayerObserver(name string, n *narrate.Narrator) *PlayerObserver {
	return &PlayerObserver{name: name, narrator: n}
}

func (o *PlayerObserver) Name() string { return o.name }

func (o *PlayerObserver) Receive(e Event) {
	switch e.Kind {
	case KindPlayerJoined:
		if e.Subject != o.name {
			o.narrator.Say(narrate.NoticedJoin, o.name, e.Subject)
		}
	case KindEnemySpawned:
		o.narrator.Say(narrate.NoticedSpawn, o.name, e.Subject)
	case KindPlayerDamaged:
		if e.Subject == o.name {
			o.narrator.Say(narrate.TookDamage, o.name, e.Amount)
		}
	case KindEnemyDefeated:
		o.narrator.Say(narrate.HeardDefeat, o.name, e.Subject)
	case KindGameStarted:
		o.narrator.Say(narrate.Ready, o.name)
	case KindGameEnded:
		o.narrator.Say(narrate.AcknowledgeEnd, o.name)
	}
}

// Recorder keeps every event it receives, in delivery order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Receive(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count reports how many recorded events have kind k.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// LogObserver writes each event to a zerolog logger at debug level.
type LogObserver struct {
	log zerolog.Logger
}

func NewLogObserver(l zerolog.Logger) *LogObserver {
	return &LogObserver{log: l}
}

func (o *LogObserver) Receive(e Event) {
	ev := o.log.Debug().Str("kind", string(e.Kind))
	if e.Subject != "" {
		ev = ev.Str("subject", e.Subject)
	}
	if e.Kind == KindPlayerDamaged {
		ev = ev.Int("amount", e.Amount)
	}
	ev.Msg("event")
}

// internal/game/engine.go
//
// Core combat engine for a single session.
// Responsibilities:
//   - Hold the players and enemies of one run, in insertion order.
//   - Register a per-player observer and announce joins/spawns on the bus.
//   - Equip items by player name (unknown names are a silent no-op).
//   - Run the combat loop and announce damage, defeats and the end of the game.
//
// Notes:
//   - Sessions are owned by their caller; there is no process-wide instance.
//   - A Session is not safe for concurrent use. The bus it talks to is.
//   - Players are invulnerable: PlayerDamaged is announced for every hit a
//     player makes, but player health is never reduced.

package game

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/arena/internal/display"
	"github.com/robalobadob/arena/internal/entity"
	"github.com/robalobadob/arena/internal/events"
	"github.com/robalobadob/arena/internal/narrate"
)

// Session is the aggregate of players and enemies for one run.
type Session struct {
	id        string
	bus       *events.Bus
	narrator  *narrate.Narrator
	log       zerolog.Logger
	hitDamage int

	players []*entity.Player
	enemies []entity.Foe
	phase   Phase
	summary Summary
}

// NewSession creates a session on bus and broadcasts GameStarted.
// A nil bus gets a private one.
func NewSession(bus *events.Bus, opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		bus:       bus,
		log:       log.Logger,
		hitDamage: DefaultHitDamage,
	}
	for _, o := range opts {
		o(s)
	}
	if s.bus == nil {
		s.bus = events.NewBus()
	}
	s.log = s.log.With().Str("session", s.id).Logger()
	s.summary.SessionID = s.id

	s.log.Debug().Int("hitDamage", s.hitDamage).Msg("session created")
	s.bus.Broadcast(events.GameStarted())
	return s
}

func (s *Session) ID() string       { return s.id }
func (s *Session) Bus() *events.Bus { return s.bus }
func (s *Session) Phase() Phase     { return s.phase }
func (s *Session) HitDamage() int   { return s.hitDamage }

// AddPlayer appends p, registers its observer under p.Name and announces it.
// A second player with the same name replaces the first one's observer.
func (s *Session) AddPlayer(p *entity.Player) {
	s.players = append(s.players, p)
	s.populated()
	s.bus.Register(p.Name, events.NewPlayerObserver(p.Name, s.narrator))
	s.log.Info().Str("player", p.Name).Msg("player joined")
	s.bus.Broadcast(events.PlayerJoined(p.Name))
}

// AddEnemy appends e and announces it.
func (s *Session) AddEnemy(e entity.Foe) {
	s.enemies = append(s.enemies, e)
	s.populated()
	s.log.Info().Str("enemy", e.Name()).Int("health", e.Health()).Msg("enemy spawned")
	s.bus.Broadcast(events.EnemySpawned(e.Name()))
}

// AddPlayers adds each player in order.
func (s *Session) AddPlayers(ps ...*entity.Player) {
	for _, p := range ps {
		s.AddPlayer(p)
	}
}

// AddEnemies adds each enemy in order.
func (s *Session) AddEnemies(es ...entity.Foe) {
	for _, e := range es {
		s.AddEnemy(e)
	}
}

// Equip puts item into the inventory of the first player named playerName.
// It reports whether such a player exists; a miss changes nothing.
func (s *Session) Equip(playerName string, item entity.Item) bool {
	p, ok := s.Player(playerName)
	if !ok {
		s.log.Debug().Str("player", playerName).Str("item", item.Name).Msg("equip: no such player")
		return false
	}
	p.Collect(item.Name)
	s.narrator.Say(narrate.PlayerCollected, p.Name, item.Name)
	return true
}

// EquipAll applies every loadout in order and returns how many landed.
func (s *Session) EquipAll(loadouts []Loadout) int {
	n := 0
	for _, l := range loadouts {
		if s.Equip(l.Player, l.Item) {
			n++
		}
	}
	return n
}

// Player returns the first player named name.
func (s *Session) Player(name string) (*entity.Player, bool) {
	for _, p := range s.players {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Players returns the players in insertion order.
func (s *Session) Players() []*entity.Player {
	return append([]*entity.Player(nil), s.players...)
}

// Enemies returns the enemies in insertion order.
func (s *Session) Enemies() []entity.Foe {
	return append([]entity.Foe(nil), s.enemies...)
}

// Run plays out the fight and broadcasts GameEnded.
//
// Enemies are fought one at a time in insertion order. Players take turns in
// insertion order, round after round, until the current enemy falls; each
// turn announces PlayerDamaged for the attacking player, applies the hit and
// announces EnemyDefeated once health reaches zero or below, moving straight
// on to the next enemy. With no players, enemies are left standing, as is
// any enemy whose health a whole round fails to lower.
//
// Running an ended session does nothing and returns the stored summary.
func (s *Session) Run() Summary {
	if s.phase == PhaseEnded {
		s.log.Warn().Msg("run: session already ended")
		return s.summary
	}
	s.phase = PhaseRunning
	s.narrator.Say(narrate.GameStarting)
	for _, p := range s.players {
		s.narrator.Say(narrate.PlayerInventory, p.Name, strings.Join(p.Inventory, ", "))
	}

	sum := Summary{SessionID: s.id}
	for _, e := range s.enemies {
		s.narrator.Say(narrate.EnemyAppears, e.Name())
		if s.fight(e, &sum) {
			sum.Defeated = append(sum.Defeated, e.Name())
		} else {
			sum.Standing = append(sum.Standing, e.Name())
		}
	}

	s.bus.Broadcast(events.GameEnded())
	s.narrator.Say(narrate.GameFinished)
	s.phase = PhaseEnded
	s.summary = sum
	s.log.Info().
		Int("hits", sum.Hits).
		Strs("defeated", sum.Defeated).
		Strs("standing", sum.Standing).
		Msg("game ended")
	return sum
}

// fight cycles through the players until e is defeated.
// It reports false when there is nobody to fight, or when a full round
// leaves e's health unchanged.
func (s *Session) fight(e entity.Foe, sum *Summary) bool {
	if len(s.players) == 0 {
		return false
	}
	for {
		before := e.Health()
		for _, p := range s.players {
			s.narrator.Say(narrate.PlayerAttacks, p.Name, e.Name())
			s.bus.Broadcast(events.PlayerDamaged(p.Name, s.hitDamage))
			hit := e.Attack(s.hitDamage)
			sum.Hits++
			s.narrateHit(e, hit)
			if e.Health() <= 0 {
				s.narrator.Say(narrate.EnemyDefeated, e.Name())
				s.bus.Broadcast(events.EnemyDefeated(e.Name()))
				return true
			}
		}
		if e.Health() >= before {
			s.log.Warn().
				Str("enemy", e.Name()).
				Int("health", e.Health()).
				Msg("fight: round made no progress, enemy left standing")
			return false
		}
	}
}

func (s *Session) narrateHit(e entity.Foe, hit entity.Hit) {
	s.narrator.Say(narrate.EnemyHit, hit.Target, hit.Dealt, hit.Remaining)
	if _, armored := e.(interface{ Armor() int }); armored {
		s.narrator.Say(narrate.ArmorAbsorbed, hit.Target, hit.Absorbed)
	}
	s.log.Debug().
		Str("enemy", hit.Target).
		Int("incoming", hit.Incoming).
		Int("dealt", hit.Dealt).
		Int("remaining", hit.Remaining).
		Msg("hit")
}

// StatusGroup builds a composite of every player and enemy for display.
func (s *Session) StatusGroup(name string) *display.Group {
	g := display.NewGroup(name)
	party := display.NewGroup("players")
	for _, p := range s.players {
		party.Add(p)
	}
	foes := display.NewGroup("enemies")
	for _, e := range s.enemies {
		if de, ok := e.(display.Entity); ok {
			foes.Add(de)
		}
	}
	g.Add(party)
	g.Add(foes)
	return g
}

func (s *Session) populated() {
	if s.phase == PhaseEmpty {
		s.phase = PhasePopulated
	}
}

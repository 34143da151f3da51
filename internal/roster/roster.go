// internal/roster/roster.go
//
// Scenario files: who fights whom, and what they carry.
//
// Responsibilities:
//   - Load a scenario from a YAML file, or fall back to the embedded default.
//   - Reject unknown fields and collect every validation problem in one error.
//   - Apply an encounter to a session through its public contract.
//
// File format:
//
//	encounters:
//	  - name: troll-bridge
//	    players: [Hero, Sidekick]
//	    enemies:
//	      - name: Troll
//	        armor: 5       # > 0 makes an armored enemy
//	    loadout:
//	      - player: Hero
//	        item: Sword

package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/arena/assets"
	"github.com/robalobadob/arena/internal/entity"
	"github.com/robalobadob/arena/internal/events"
	"github.com/robalobadob/arena/internal/factory"
	"github.com/robalobadob/arena/internal/game"
)

// ErrInvalidScenario is wrapped by every validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

type Scenario struct {
	Encounters []Encounter `yaml:"encounters"`
}

type Encounter struct {
	Name    string       `yaml:"name"`
	Players []string     `yaml:"players"`
	Enemies []EnemyDef   `yaml:"enemies"`
	Loadout []LoadoutDef `yaml:"loadout"`
}

// EnemyDef describes one enemy. Armor above zero wraps it in armor.
type EnemyDef struct {
	Name  string `yaml:"name"`
	Armor int    `yaml:"armor"`
}

type LoadoutDef struct {
	Player string `yaml:"player"`
	Item   string `yaml:"item"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Default returns the embedded demo scenario.
func Default() (*Scenario, error) {
	b, err := assets.DefaultScenario()
	if err != nil {
		return nil, fmt.Errorf("read embedded scenario: %w", err)
	}
	return Parse(b)
}

// LoadOrDefault loads path, or the embedded scenario when path is empty.
func LoadOrDefault(path string) (*Scenario, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes b strictly and validates the result.
func Parse(b []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate reports every problem at once.
func (sc *Scenario) Validate() error {
	var problems []string
	if len(sc.Encounters) == 0 {
		problems = append(problems, "no encounters")
	}
	seen := make(map[string]bool, len(sc.Encounters))
	for i, enc := range sc.Encounters {
		label := enc.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if enc.Name != "" && seen[enc.Name] {
			problems = append(problems, fmt.Sprintf("encounter %s: duplicate name", label))
		}
		seen[enc.Name] = true
		if len(enc.Players) == 0 && len(enc.Enemies) == 0 {
			problems = append(problems, fmt.Sprintf("encounter %s: no players or enemies", label))
		}
		for _, p := range enc.Players {
			if strings.HasPrefix(p, events.ReservedPrefix) {
				problems = append(problems, fmt.Sprintf("encounter %s: player %q uses reserved prefix %q", label, p, events.ReservedPrefix))
			}
		}
		for _, e := range enc.Enemies {
			if e.Armor < 0 {
				problems = append(problems, fmt.Sprintf("encounter %s: enemy %q has negative armor %d", label, e.Name, e.Armor))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidScenario, strings.Join(problems, "; "))
	}
	return nil
}

// Foes builds the encounter's enemies in order.
func (enc Encounter) Foes() []entity.Foe {
	out := make([]entity.Foe, 0, len(enc.Enemies))
	for _, e := range enc.Enemies {
		if e.Armor > 0 {
			out = append(out, factory.CreateArmoredEnemy(e.Name, e.Armor))
		} else {
			out = append(out, factory.CreateEnemy(e.Name))
		}
	}
	return out
}

// Loadouts converts the encounter's loadout into session loadouts.
func (enc Encounter) Loadouts() []game.Loadout {
	out := make([]game.Loadout, 0, len(enc.Loadout))
	for _, l := range enc.Loadout {
		out = append(out, game.Loadout{Player: l.Player, Item: factory.CreateItem(l.Item)})
	}
	return out
}

// Apply adds the encounter's players, equips them, then adds its enemies.
// It returns how many loadout entries found their player.
func Apply(s *game.Session, enc Encounter) int {
	for _, name := range enc.Players {
		s.AddPlayer(factory.CreatePlayer(name))
	}
	n := s.EquipAll(enc.Loadouts())
	s.AddEnemies(enc.Foes()...)
	return n
}

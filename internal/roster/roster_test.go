package roster

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/robalobadob/arena/internal/events"
	"github.com/robalobadob/arena/internal/game"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultScenario(t *testing.T) {
	sc, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(sc.Encounters) != 2 {
		t.Fatalf("encounters = %d, want 2", len(sc.Encounters))
	}
	first := sc.Encounters[0]
	if first.Name != "goblin-ambush" || strings.Join(first.Players, ",") != "Hero,Sidekick" {
		t.Fatalf("first encounter = %+v", first)
	}
	troll := sc.Encounters[1].Enemies[0]
	if troll.Name != "Troll" || troll.Armor != 5 {
		t.Fatalf("troll = %+v", troll)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeScenario(t, `
encounters:
  - name: cave
    players: [Hero]
    enemies:
      - name: Bat
`)
	sc, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sc.Encounters) != 1 || sc.Encounters[0].Enemies[0].Name != "Bat" {
		t.Fatalf("scenario = %+v", sc)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	_, err := Parse([]byte(`
encounters:
  - name: cave
    players: [Hero]
    enemys: []
`))
	if err == nil || !strings.Contains(err.Error(), "enemys") {
		t.Fatalf("err = %v, want unknown field error", err)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	_, err := Parse([]byte(`
encounters:
  - name: a
    enemies:
      - name: Troll
        armor: -1
  - name: a
    players: [Hero]
  - name: empty
`))
	if !errors.Is(err, ErrInvalidScenario) {
		t.Fatalf("err = %v, want ErrInvalidScenario", err)
	}
	for _, want := range []string{"negative armor -1", "duplicate name", "empty: no players or enemies"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestReservedPlayerNameRejected(t *testing.T) {
	_, err := Parse([]byte(`
encounters:
  - name: cave
    players: [Hero, "#log"]
    enemies:
      - name: Bat
`))
	if !errors.Is(err, ErrInvalidScenario) {
		t.Fatalf("err = %v, want ErrInvalidScenario", err)
	}
	if !strings.Contains(err.Error(), `player "#log" uses reserved prefix`) {
		t.Fatalf("err = %v, want reserved prefix problem", err)
	}
}

func TestEmptyDocumentIsInvalid(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, ErrInvalidScenario) {
		t.Fatalf("err = %v, want ErrInvalidScenario", err)
	}
}

func TestApply(t *testing.T) {
	bus := events.NewBus()
	rec := &events.Recorder{}
	bus.Register("#recorder", rec)
	s := game.NewSession(bus, game.WithLogger(zerolog.Nop()))

	enc := Encounter{
		Name:    "bridge",
		Players: []string{"Hero", "Sidekick"},
		Enemies: []EnemyDef{{Name: "Troll", Armor: 5}, {Name: "Goblin"}},
		Loadout: []LoadoutDef{
			{Player: "Hero", Item: "Sword"},
			{Player: "Ghost", Item: "Chain"},
		},
	}
	if n := Apply(s, enc); n != 1 {
		t.Fatalf("equipped = %d, want 1", n)
	}

	hero, _ := s.Player("Hero")
	if strings.Join(hero.Inventory, ",") != "Sword" {
		t.Fatalf("hero inventory = %v", hero.Inventory)
	}
	foes := s.Enemies()
	if len(foes) != 2 {
		t.Fatalf("enemies = %d, want 2", len(foes))
	}
	if _, armored := foes[0].(interface{ Armor() int }); !armored {
		t.Fatal("Troll should be armored")
	}
	if _, armored := foes[1].(interface{ Armor() int }); armored {
		t.Fatal("Goblin should not be armored")
	}
	if got := rec.Count(events.KindPlayerJoined); got != 2 {
		t.Fatalf("joins = %d, want 2", got)
	}
	if got := rec.Count(events.KindEnemySpawned); got != 2 {
		t.Fatalf("spawns = %d, want 2", got)
	}
}

func TestDefaultEncountersRunToCompletion(t *testing.T) {
	sc, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for _, enc := range sc.Encounters {
		s := game.NewSession(nil, game.WithLogger(zerolog.Nop()))
		Apply(s, enc)
		sum := s.Run()
		if len(sum.Standing) != 0 || len(sum.Defeated) != len(enc.Enemies) {
			t.Fatalf("%s: summary = %+v", enc.Name, sum)
		}
	}
}

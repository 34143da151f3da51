package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/arena/internal/config"
)

func quiet(t *testing.T) {
	t.Helper()
	prev := log.Logger
	log.Logger = zerolog.Nop()
	t.Cleanup(func() { log.Logger = prev })
}

func TestRunDefaultScenario(t *testing.T) {
	quiet(t)
	var out bytes.Buffer
	cfg := config.Config{LogLevel: "info", LogFormat: "json", Lang: "en-US", HitDamage: 10}

	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"Goblin has been defeated!",
		"Troll has been defeated!",
		"Group 'goblin-ambush' status:",
		"Group 'troll-bridge' status:",
		"Hero's Inventory: [Sword]",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunSpanish(t *testing.T) {
	quiet(t)
	var out bytes.Buffer
	cfg := config.Config{LogLevel: "info", LogFormat: "json", Lang: "es", HitDamage: 10}

	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "¡Goblin ha sido derrotado!") {
		t.Fatalf("output missing Spanish defeat line:\n%s", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	quiet(t)
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("encounters: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cases := map[string]config.Config{
		"unknown locale":   {Lang: "xx-YY", HitDamage: 10},
		"invalid scenario": {Lang: "en-US", ScenarioFile: bad, HitDamage: 10},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			if err := run(context.Background(), cfg, &bytes.Buffer{}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/arena/internal/config"
	"github.com/robalobadob/arena/internal/events"
	"github.com/robalobadob/arena/internal/game"
	"github.com/robalobadob/arena/internal/narrate"
	"github.com/robalobadob/arena/internal/roster"
	"github.com/robalobadob/arena/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.ParseConfig(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg, os.Stderr)

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("arena exited")
	}
}

func setupLogging(cfg config.Config, w io.Writer) {
	if lvl, err := cfg.Level(); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == config.FormatConsole {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// run plays every encounter of the configured scenario in its own session,
// then prints a status report for each.
func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	narrator, err := narrate.New(out, cfg.Lang)
	if err != nil {
		return err
	}
	sc, err := roster.LoadOrDefault(cfg.ScenarioFile)
	if err != nil {
		return err
	}
	log.Info().
		Str("lang", narrator.Locale()).
		Int("encounters", len(sc.Encounters)).
		Int("hitDamage", cfg.HitDamage).
		Msg("starting arena")

	st := store.NewMemoryStore()
	for _, enc := range sc.Encounters {
		bus := events.NewBus()
		rec := &events.Recorder{}
		bus.Register(events.ReservedPrefix+"recorder", rec)
		bus.Register(events.ReservedPrefix+"log", events.NewLogObserver(log.With().Str("encounter", enc.Name).Logger()))

		s := game.NewSession(bus,
			game.WithNarrator(narrator),
			game.WithHitDamage(cfg.HitDamage),
			game.WithLogger(log.With().Str("encounter", enc.Name).Logger()),
		)
		roster.Apply(s, enc)
		sum := s.Run()
		if err := st.Save(ctx, s); err != nil {
			return err
		}
		log.Info().
			Str("encounter", enc.Name).
			Str("session", sum.SessionID).
			Int("events", len(rec.Events())).
			Msg("encounter finished")
	}

	sessions, err := st.List(ctx)
	if err != nil {
		return err
	}
	for i, s := range sessions {
		s.StatusGroup(sc.Encounters[i].Name).DisplayAll(out)
	}
	return nil
}

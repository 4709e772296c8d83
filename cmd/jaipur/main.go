// Command jaipur runs batches of simulated matches between scripted
// agents and reports the win tally. Configuration comes from the
// environment (optionally a .env file); see internal/config.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kmfrost/jaipur/agent"
	"github.com/kmfrost/jaipur/engine"
	"github.com/kmfrost/jaipur/internal/config"
	"github.com/kmfrost/jaipur/internal/historian"
	"github.com/kmfrost/jaipur/internal/sim"
)

func main() {
	// A missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	p0, err := agent.New(cfg.P0)
	if err != nil {
		log.WithError(err).Fatal("seat 0")
	}
	p1, err := agent.New(cfg.P1)
	if err != nil {
		log.WithError(err).Fatal("seat 1")
	}

	runner := &sim.Runner{
		Agents: [2]agent.Agent{p0, p1},
		Log:    logrus.NewEntry(log),
	}

	if cfg.DBPath != "" {
		store, err := historian.Open(cfg.DBPath)
		if err != nil {
			log.WithError(err).Fatal("failed to open match database")
		}
		defer store.Close()
		runner.Recorder = store
		log.WithField("db", cfg.DBPath).Info("recording matches")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var wins [2]int
	shared := 0
	played := 0
	for i := 0; i < cfg.Games; i++ {
		// Per-match seeds derive from the base so any single match can
		// be replayed in isolation.
		seed := cfg.Seed + uint64(i)
		res, err := runner.Run(ctx, seed)
		if err != nil {
			if ctx.Err() != nil {
				log.Warn("interrupted")
				break
			}
			log.WithError(err).WithField("seed", seed).Fatal("match failed")
		}
		played++
		if res.Winner == engine.NoWinner {
			shared++
		} else {
			wins[res.Winner]++
		}
	}

	log.WithFields(logrus.Fields{
		"games":  played,
		"p0":     p0.Name(),
		"p1":     p1.Name(),
		"p0_win": wins[0],
		"p1_win": wins[1],
		"shared": shared,
	}).Info("simulation complete")
}

// Package sim drives full matches between two agents over the rules
// engine and reports the outcome. Recording is optional and streamed
// per action, so a historian can reconstruct any match afterwards.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kmfrost/jaipur/agent"
	"github.com/kmfrost/jaipur/engine"
)

// ErrTurnLimit means a match hit the safety cap without terminating.
// With legal-move agents this indicates an engine or agent bug.
var ErrTurnLimit = errors.New("sim: turn limit reached")

// DefaultMaxTurns caps a match; real games end well under 200 turns.
const DefaultMaxTurns = 1000

// Result is the outcome of one completed match.
type Result struct {
	MatchID  uuid.UUID
	Seed     uint64
	Agents   [2]string
	Turns    int
	Scores   [2]int
	Winner   int8 // engine.NoWinner on a shared victory
	Duration time.Duration
}

// ActionRecord is one applied action, in match order.
type ActionRecord struct {
	MatchID       uuid.UUID
	Ordinal       int
	Seat          uint8
	Agent         string
	ActionType    string
	Good          string
	Count         uint8
	TokensAwarded uint8
	BonusTier     uint8
	Timestamp     int64 // unix milliseconds
}

// Recorder receives the lifecycle of a match. Implementations must be
// safe to call from the running goroutine; errors abort the match.
type Recorder interface {
	StartMatch(ctx context.Context, matchID uuid.UUID, seed uint64, agents [2]string) error
	RecordAction(ctx context.Context, rec ActionRecord) error
	FinishMatch(ctx context.Context, res Result) error
}

// Runner plays matches between a fixed pair of agents. Seat 0 gets
// Agents[0]. The zero value is not usable; both agents are required.
type Runner struct {
	Agents   [2]agent.Agent
	Log      *logrus.Entry
	Recorder Recorder // nil disables recording
	MaxTurns int      // 0 means DefaultMaxTurns
}

// Run plays one seeded match to completion. The same seed and agent
// pair always produces the same result. Context cancellation is
// checked between turns.
func (r *Runner) Run(ctx context.Context, seed uint64) (Result, error) {
	matchID := uuid.New()
	log := r.log().WithFields(logrus.Fields{
		"match_id": matchID,
		"seed":     seed,
		"p0":       r.Agents[0].Name(),
		"p1":       r.Agents[1].Name(),
	})

	maxTurns := r.MaxTurns
	if maxTurns == 0 {
		maxTurns = DefaultMaxTurns
	}

	res := Result{
		MatchID: matchID,
		Seed:    seed,
		Agents:  [2]string{r.Agents[0].Name(), r.Agents[1].Name()},
	}
	if r.Recorder != nil {
		if err := r.Recorder.StartMatch(ctx, matchID, seed, res.Agents); err != nil {
			return Result{}, fmt.Errorf("start match: %w", err)
		}
	}

	g := engine.NewGame(seed)
	g.Deal()
	rng := rand.New(rand.NewPCG(seed, seed<<1|1))
	start := time.Now()
	log.Debug("match started")

	for !g.IsTerminated() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if res.Turns >= maxTurns {
			return Result{}, fmt.Errorf("%w after %d turns", ErrTurnLimit, res.Turns)
		}

		seat := g.CurrentSeat
		ag := r.Agents[seat]
		act := ag.ChooseAction(g.Snapshot(), rng)
		if err := g.Apply(act); err != nil {
			return Result{}, fmt.Errorf("turn %d: %s chose an illegal %s: %w",
				res.Turns+1, ag.Name(), act.Type, err)
		}
		res.Turns++

		info, _ := g.LastAction()
		log.WithFields(logrus.Fields{
			"turn":   res.Turns,
			"seat":   info.Seat,
			"action": info.Type.String(),
			"good":   info.Good.String(),
			"count":  info.Count,
		}).Debug("action applied")

		if r.Recorder != nil {
			rec := ActionRecord{
				MatchID:       matchID,
				Ordinal:       res.Turns,
				Seat:          info.Seat,
				Agent:         ag.Name(),
				ActionType:    info.Type.String(),
				Good:          info.Good.String(),
				Count:         info.Count,
				TokensAwarded: info.TokensAwarded,
				BonusTier:     info.BonusTier,
				Timestamp:     time.Now().UnixMilli(),
			}
			if err := r.Recorder.RecordAction(ctx, rec); err != nil {
				return Result{}, fmt.Errorf("record action %d: %w", res.Turns, err)
			}
		}
	}

	res.Scores, res.Winner = g.FinalScores()
	res.Duration = time.Since(start)

	if r.Recorder != nil {
		if err := r.Recorder.FinishMatch(ctx, res); err != nil {
			return Result{}, fmt.Errorf("finish match: %w", err)
		}
	}

	log.WithFields(logrus.Fields{
		"turns":    res.Turns,
		"score_p0": res.Scores[0],
		"score_p1": res.Scores[1],
		"winner":   res.Winner,
	}).Info("match finished")
	return res, nil
}

func (r *Runner) log() *logrus.Entry {
	if r.Log != nil {
		return r.Log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

package agent

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmfrost/jaipur/engine"
)

// setHand replaces a seat's hand for scenario setup.
func setHand(g *engine.GameState, seat uint8, cards ...engine.Good) {
	p := &g.Players[seat]
	p.HandLen = uint8(len(cards))
	copy(p.Hand[:], cards)
}

// setMarket replaces the market row for scenario setup.
func setMarket(g *engine.GameState, cards ...engine.Good) {
	g.MarketLen = uint8(len(cards))
	copy(g.Market[:], cards)
}

// playMatch drives a full game between two agents, failing the test on
// any rejected action, and returns the number of turns played.
func playMatch(t *testing.T, seed uint64, a0, a1 Agent) int {
	t.Helper()

	g := engine.NewGame(seed)
	g.Deal()
	rng := rand.New(rand.NewPCG(seed, 0xa0761d6478bd642f))
	agents := [2]Agent{a0, a1}

	turns := 0
	for !g.IsTerminated() {
		turns++
		require.LessOrEqual(t, turns, 1000, "seed %d: game did not terminate", seed)

		ag := agents[g.CurrentSeat]
		act := ag.ChooseAction(g.Snapshot(), rng)
		require.NoError(t, g.Apply(act),
			"seed %d turn %d: %s rejected a %s it chose", seed, turns, ag.Name(), act.Type)
	}
	return turns
}

func TestNew(t *testing.T) {
	for _, name := range []string{"random", "greedy"} {
		ag, err := New(name)
		require.NoError(t, err)
		assert.Equal(t, name, ag.Name())
	}

	_, err := New("minimax")
	assert.Error(t, err)
}

// TestRandomPlaysCleanGames drives random-vs-random matches and
// requires every chosen action to be accepted by the engine.
func TestRandomPlaysCleanGames(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		turns := playMatch(t, seed, Random{}, Random{})
		assert.Greater(t, turns, 0)
	}
}

// TestGreedyPlaysCleanGames pits greedy against random across seeds.
func TestGreedyPlaysCleanGames(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		playMatch(t, seed, Greedy{}, Random{})
		playMatch(t, seed, Random{}, Greedy{})
	}
}

// TestGreedyPrefersBestSale crafts a hand where diamonds outprice a
// bigger leather holding and requires the diamond sale.
func TestGreedyPrefersBestSale(t *testing.T) {
	g := engine.NewGame(7)
	g.Deal()
	seat := g.CurrentSeat
	// Diamonds pay 7+7 = 14 off a full stack; three leather pay 4+3+2 = 9.
	setHand(&g, seat,
		engine.GoodLeather, engine.GoodLeather, engine.GoodLeather,
		engine.GoodDiamond, engine.GoodDiamond)

	rng := rand.New(rand.NewPCG(1, 2))
	act := Greedy{}.ChooseAction(g.Snapshot(), rng)

	require.Equal(t, engine.ActionSell, act.Type)
	assert.Equal(t, []uint8{3, 4}, act.HandIndices)
	require.NoError(t, g.Apply(act))
}

// TestGreedyGrabsWithoutASale verifies the grab fallback targets the
// most valuable market good.
func TestGreedyGrabsWithoutASale(t *testing.T) {
	g := engine.NewGame(7)
	g.Deal()
	seat := g.CurrentSeat
	// A lone silver cannot be sold; gold (top token 6) beats leather (4).
	setHand(&g, seat, engine.GoodSilver)
	setMarket(&g,
		engine.GoodCamel, engine.GoodGold, engine.GoodLeather,
		engine.GoodCamel, engine.GoodCamel)

	rng := rand.New(rand.NewPCG(1, 2))
	act := Greedy{}.ChooseAction(g.Snapshot(), rng)

	require.Equal(t, engine.ActionGrab, act.Type)
	assert.Equal(t, uint8(1), act.MarketIndex)
	require.NoError(t, g.Apply(act))
}

// TestRandomSellsWholeHoldings verifies sells always cover every card
// of the chosen type and never anything else.
func TestRandomSellsWholeHoldings(t *testing.T) {
	g := engine.NewGame(3)
	g.Deal()
	seat := g.CurrentSeat
	setHand(&g, seat,
		engine.GoodSpice, engine.GoodSpice, engine.GoodSpice, engine.GoodCamel)
	setMarket(&g,
		engine.GoodCamel, engine.GoodCamel, engine.GoodCamel,
		engine.GoodCamel, engine.GoodCamel)

	rng := rand.New(rand.NewPCG(9, 9))
	v := g.Snapshot()
	for i := 0; i < 50; i++ {
		act := Random{}.ChooseAction(v, rng)
		switch act.Type {
		case engine.ActionTakeCamels:
			// Legal here too.
		case engine.ActionSell:
			assert.Equal(t, []uint8{0, 1, 2}, act.HandIndices)
		default:
			t.Fatalf("unexpected %s with an all-camel market", act.Type)
		}
	}
}

// TestRandomTradeShape verifies trades built by the random agent swap
// equal counts, give no type for itself, and respect the goods limit.
func TestRandomTradeShape(t *testing.T) {
	g := engine.NewGame(11)
	g.Deal()
	seat := g.CurrentSeat
	setHand(&g, seat,
		engine.GoodLeather, engine.GoodLeather, engine.GoodCamel, engine.GoodCamel)
	setMarket(&g,
		engine.GoodSilver, engine.GoodGold, engine.GoodDiamond,
		engine.GoodSpice, engine.GoodCloth)

	rng := rand.New(rand.NewPCG(4, 8))
	v := g.Snapshot()
	seen := false
	for i := 0; i < 100; i++ {
		act := Random{}.ChooseAction(v, rng)
		if act.Type != engine.ActionTrade {
			continue
		}
		seen = true
		require.Equal(t, len(act.HandIndices), len(act.MarketIndices))
		require.GreaterOrEqual(t, len(act.HandIndices), 2)

		cp := g
		require.NoError(t, cp.Apply(act))
	}
	assert.True(t, seen, "trade never chosen despite being legal")
}

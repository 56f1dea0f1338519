// Package market simulates a paper-trading market over the catalog's
// mock assets: a fixed-interval random walk, no external data.
package market

import (
	"math/rand/v2"
	"time"

	"investingo/internal/content"
)

// TickInterval is how often quoted prices drift.
const TickInterval = 4 * time.Second

// maxDriftPerTick bounds the per-tick price move (fraction of price).
const maxDriftPerTick = 0.003

// Quote is one asset's live price state.
type Quote struct {
	Asset content.Asset
	Price float64
	// Change is the percent move since the session opened.
	Change float64

	openPrice float64
}

// Engine owns the quote list. It is driven from the single UI event loop;
// no internal locking is needed.
type Engine struct {
	quotes []Quote
	rng    *rand.Rand
}

// NewEngine seeds quotes from the catalog's asset list.
func NewEngine(assets []content.Asset) *Engine {
	quotes := make([]Quote, len(assets))
	for i, a := range assets {
		quotes[i] = Quote{
			Asset:     a,
			Price:     a.Price,
			Change:    a.Change,
			openPrice: a.Price,
		}
	}
	return &Engine{
		quotes: quotes,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Quotes returns the live quote list. The slice is owned by the engine;
// callers must not retain it across ticks.
func (e *Engine) Quotes() []Quote {
	return e.quotes
}

// Find returns the quote for a symbol, or nil if unknown.
func (e *Engine) Find(symbol string) *Quote {
	for i := range e.quotes {
		if e.quotes[i].Asset.Symbol == symbol {
			return &e.quotes[i]
		}
	}
	return nil
}

// Tick applies one random-walk step of at most ±0.3% to every price and
// recomputes the percent change against the session open.
func (e *Engine) Tick() {
	for i := range e.quotes {
		q := &e.quotes[i]
		drift := (e.rng.Float64()*2 - 1) * maxDriftPerTick
		q.Price *= 1 + drift
		q.Change = (q.Price/q.openPrice - 1) * 100
	}
}

// Unlocked reports whether the asset is tradable at the given level.
func Unlocked(a content.Asset, level int) bool {
	return level >= a.LevelRequired
}

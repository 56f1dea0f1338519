package market

import (
	"math"
	"testing"

	"investingo/internal/content"
)

func testAssets() []content.Asset {
	return []content.Asset{
		{Symbol: "AAPL", Name: "Apple Inc.", Price: 100, Class: "Stock", LevelRequired: 1},
		{Symbol: "BTC", Name: "Bitcoin", Price: 50000, Class: "Crypto", LevelRequired: 3},
	}
}

func TestTickBoundsDrift(t *testing.T) {
	e := NewEngine(testAssets())

	prev := make([]float64, len(e.Quotes()))
	for i, q := range e.Quotes() {
		prev[i] = q.Price
	}

	for step := 0; step < 1000; step++ {
		e.Tick()
		for i, q := range e.Quotes() {
			ratio := q.Price / prev[i]
			if ratio < 1-maxDriftPerTick-1e-12 || ratio > 1+maxDriftPerTick+1e-12 {
				t.Fatalf("step %d: %s moved by %v, beyond ±%v",
					step, q.Asset.Symbol, ratio-1, maxDriftPerTick)
			}
			if q.Price <= 0 {
				t.Fatalf("%s price went non-positive: %v", q.Asset.Symbol, q.Price)
			}
			prev[i] = q.Price
		}
	}
}

func TestChangeTracksSessionOpen(t *testing.T) {
	e := NewEngine(testAssets())

	for i := 0; i < 50; i++ {
		e.Tick()
	}

	q := e.Find("AAPL")
	if q == nil {
		t.Fatal("AAPL quote missing")
	}
	want := (q.Price/100 - 1) * 100
	if math.Abs(q.Change-want) > 1e-9 {
		t.Errorf("change = %v, want %v", q.Change, want)
	}
}

func TestFind(t *testing.T) {
	e := NewEngine(testAssets())

	if e.Find("BTC") == nil {
		t.Error("known symbol not found")
	}
	if e.Find("XYZ") != nil {
		t.Error("unknown symbol returned a quote")
	}
}

func TestUnlocked(t *testing.T) {
	btc := content.Asset{Symbol: "BTC", LevelRequired: 3}

	if Unlocked(btc, 2) {
		t.Error("level 2 unlocked a level 3 asset")
	}
	if !Unlocked(btc, 3) {
		t.Error("level 3 did not unlock a level 3 asset")
	}
}

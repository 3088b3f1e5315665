package stockio

import "math/rand"

// testSim returns a simulator with a fixed seed so that generated series
// are reproducible across runs.
func testSim(seed int64) *Simulator {
	return NewSimulator(rand.New(rand.NewSource(seed)))
}

// testCatalog builds a two-asset market: one equity priced like BBCA and
// one crypto priced like BTC, with short deterministic histories.
func testCatalog() *Catalog {
	return NewCatalog(testSim(1), 10,
		Asset{ID: "1", Code: "BBCA", Name: "Bank Central Asia", Class: Equity, CurrentPrice: 8750, Swing: 5},
		Asset{ID: "15", Code: "BTC", Name: "Bitcoin", Class: Crypto, CurrentPrice: 750_000_000, Swing: 10},
	)
}

// almostEqual compares floats with the tolerance used across engine tests.
func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}

package stockio

import (
	"math/rand"
	"time"
)

// Simulator produces synthetic price data.
//
// Prices follow a multiplicative random walk: each day applies a uniform
// return in [-0.05, 0.05] to the previous day's price. The walk is not
// mean-reverting and is never clamped, so long series can drift arbitrarily
// far from their seed price. The displayed live price is quoted
// independently, and no compensating logic exists; both facts are part of
// the simulated market's contract.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator returns a simulator drawing from rng. Passing nil seeds a
// private source from the clock, which is what the application does; tests
// inject rand.New(rand.NewSource(k)) to make series reproducible.
func NewSimulator(rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{rng: rng}
}

// maxDailyReturn bounds the absolute daily return of the walk.
const maxDailyReturn = 0.05

// GenerateSeries generates a price history of exactly n elements for an
// asset currently quoted at seed. The walk starts at 80% of the seed price
// and appends every step, so the first element already includes one day of
// movement. Returns nil if seed or n is not positive.
func (s *Simulator) GenerateSeries(seed float64, n int) []float64 {
	if seed <= 0 || n <= 0 {
		return nil
	}
	series := make([]float64, 0, n)
	price := seed * 0.8
	for i := 0; i < n; i++ {
		r := s.uniform(maxDailyReturn)
		price *= 1 + r
		series = append(series, price)
	}
	return series
}

// ChangePercent draws the quoted daily change for an asset, uniform in
// [-swing, swing] percent.
func (s *Simulator) ChangePercent(swing float64) float64 {
	return s.uniform(swing)
}

// uniform returns a value uniformly distributed in [-bound, bound).
func (s *Simulator) uniform(bound float64) float64 {
	return (s.rng.Float64()*2 - 1) * bound
}

package stockio

import "sync"

// Catalog holds the reference data for every tradable asset.
//
// Reads always see a consistent snapshot: RefreshPrices builds a complete
// replacement set and swaps it in under the lock, it never mutates a
// published asset in place.
type Catalog struct {
	mu     sync.RWMutex
	sim    *Simulator
	assets []Asset
	index  map[string]int // asset id -> position in assets
}

// NewCatalog creates a catalog over the given assets. Assets with an empty
// History get one generated immediately, historyDays long.
func NewCatalog(sim *Simulator, historyDays int, assets ...Asset) *Catalog {
	c := &Catalog{
		sim:    sim,
		assets: make([]Asset, 0, len(assets)),
		index:  make(map[string]int, len(assets)),
	}
	for _, a := range assets {
		if len(a.History) == 0 {
			a.History = sim.GenerateSeries(a.CurrentPrice, historyDays)
		}
		c.index[a.ID] = len(c.assets)
		c.assets = append(c.assets, a)
	}
	return c
}

// Assets returns a fresh snapshot of the catalog. The caller owns the
// returned slice and the history slices inside it.
func (c *Catalog) Assets() []Asset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Asset, len(c.assets))
	for i, a := range c.assets {
		out[i] = a.clone()
	}
	return out
}

// Get returns the asset with the given id.
func (c *Catalog) Get(id string) (Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return Asset{}, false
	}
	return c.assets[i].clone(), true
}

// FindCode returns the asset with the given ticker code.
func (c *Catalog) FindCode(code string) (Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.assets {
		if a.Code == code {
			return a.clone(), true
		}
	}
	return Asset{}, false
}

// RefreshPrices regenerates the daily change and the price history of every
// asset, leaving identity and descriptive fields untouched, and publishes
// the result atomically. It returns the new snapshot.
func (c *Catalog) RefreshPrices() []Asset {
	c.mu.Lock()
	next := make([]Asset, len(c.assets))
	for i, a := range c.assets {
		a.ChangePercent = c.sim.ChangePercent(a.Swing)
		a.History = c.sim.GenerateSeries(a.CurrentPrice, len(a.History))
		next[i] = a
	}
	c.assets = next
	c.mu.Unlock()
	return c.Assets()
}

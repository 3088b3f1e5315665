package stockio

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Validation failures returned by Buy and Sell. All are recoverable: a
// rejected operation leaves the portfolio unchanged, and callers match them
// with errors.Is to decide what to tell the user.
var (
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrHoldingNotFound     = errors.New("holding not found")
	ErrUnknownAsset        = errors.New("unknown asset")
)

// Holding is the portfolio's current position in a single asset. There is at
// most one holding per asset; buys merge into it, a sell removes it whole.
type Holding struct {
	AssetID  string
	Quantity float64 // integer-valued for equities, fractional for crypto
}

// Valuation is a derived view of the portfolio: cash plus the value of all
// holdings at current catalog prices.
type Valuation struct {
	CashBalance    float64
	PortfolioValue float64
	TotalValue     float64
}

// Portfolio owns the cash balance and holdings of the simulated investor.
//
// It is the only mutable aggregate in the package. Buy and Sell validate
// before they touch any state and apply balance and holding updates as one
// atomic unit under the portfolio mutex, so no caller can observe a
// half-applied trade. Money and quantities are plain float64, matching the
// simulation's accounting; there is no decimal correction.
type Portfolio struct {
	mu       sync.Mutex
	catalog  *Catalog
	cash     float64
	holdings map[string]Holding
}

// NewPortfolio creates a portfolio pricing its holdings against catalog,
// starting with cash and no holdings.
func NewPortfolio(catalog *Catalog, cash float64) *Portfolio {
	return &Portfolio{
		catalog:  catalog,
		cash:     cash,
		holdings: make(map[string]Holding),
	}
}

// Buy executes a purchase of the given asset. input is the raw user string:
// an integer lot count for equities, a monetary amount for crypto. On
// success the cost is debited and the bought quantity merges into the
// existing holding (or opens a new one); the resulting holding quantity is
// returned.
func (p *Portfolio) Buy(assetID, input string) (float64, error) {
	asset, ok := p.catalog.Get(assetID)
	if !ok {
		return 0, fmt.Errorf("buy %q: %w", assetID, ErrUnknownAsset)
	}

	var quantity, cost float64
	switch asset.Class {
	case Equity:
		lots, err := ParseLots(input)
		if err != nil {
			return 0, fmt.Errorf("buy %s: %w", asset.Code, err)
		}
		quantity = float64(lots)
		cost = quantity * asset.CurrentPrice
	case Crypto:
		amount, err := ParseAmount(input)
		if err != nil {
			return 0, fmt.Errorf("buy %s: %w", asset.Code, err)
		}
		if asset.CurrentPrice <= 0 {
			return 0, fmt.Errorf("buy %s: price %v: %w", asset.Code, asset.CurrentPrice, ErrInvalidPrice)
		}
		quantity = amount / asset.CurrentPrice
		cost = amount
	default:
		return 0, fmt.Errorf("buy %s: unsupported asset class %d", asset.Code, asset.Class)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if cost > p.cash {
		return 0, fmt.Errorf("buy %s: cost %.2f exceeds cash %.2f: %w", asset.Code, cost, p.cash, ErrInsufficientBalance)
	}
	p.cash -= cost
	h := p.holdings[assetID]
	h.AssetID = assetID
	h.Quantity += quantity
	p.holdings[assetID] = h
	return h.Quantity, nil
}

// Sell liquidates the full holding in the given asset and returns the
// proceeds credited to cash. Partial sells do not exist in this design.
func (p *Portfolio) Sell(assetID string) (float64, error) {
	asset, ok := p.catalog.Get(assetID)
	if !ok {
		return 0, fmt.Errorf("sell %q: %w", assetID, ErrUnknownAsset)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.holdings[assetID]
	if !ok {
		return 0, fmt.Errorf("sell %s: %w", asset.Code, ErrHoldingNotFound)
	}
	proceeds := h.Quantity * asset.CurrentPrice
	p.cash += proceeds
	delete(p.holdings, assetID)
	return proceeds, nil
}

// Valuation prices every holding at the current catalog price and returns
// the derived totals. It never mutates state and is safe to call any time.
func (p *Portfolio) Valuation() Valuation {
	p.mu.Lock()
	defer p.mu.Unlock()
	var value float64
	for id, h := range p.holdings {
		if asset, ok := p.catalog.Get(id); ok {
			value += h.Quantity * asset.CurrentPrice
		}
	}
	return Valuation{
		CashBalance:    p.cash,
		PortfolioValue: value,
		TotalValue:     p.cash + value,
	}
}

// CashBalance returns the current cash on hand.
func (p *Portfolio) CashBalance() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cash
}

// Holdings returns a snapshot of the current holdings, ordered by asset id.
func (p *Portfolio) Holdings() []Holding {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Holding, 0, len(p.holdings))
	for _, h := range p.holdings {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssetID < out[j].AssetID })
	return out
}

package renderer

import (
	"fmt"

	"github.com/etnz/stockio"
)

// ValuationView is the portfolio screen: the derived totals plus one row
// per holding priced at current catalog prices.
type ValuationView struct {
	Cash           stockio.Money
	PortfolioValue stockio.Money
	TotalValue     stockio.Money
	Holdings       []HoldingRow
}

// HoldingRow is a single holding formatted for display.
type HoldingRow struct {
	Code     string
	Name     string
	Class    string
	Quantity string
	Price    stockio.Money
	Value    stockio.Money
}

// NewValuationView resolves holdings against the catalog and formats the
// totals. Holdings are listed in catalog order.
func NewValuationView(catalog *stockio.Catalog, p *stockio.Portfolio) *ValuationView {
	v := p.Valuation()
	view := &ValuationView{
		Cash:           stockio.M(v.CashBalance, "IDR"),
		PortfolioValue: stockio.M(v.PortfolioValue, "IDR"),
		TotalValue:     stockio.M(v.TotalValue, "IDR"),
	}

	held := make(map[string]stockio.Holding)
	for _, h := range p.Holdings() {
		held[h.AssetID] = h
	}
	for _, a := range catalog.Assets() {
		h, ok := held[a.ID]
		if !ok {
			continue
		}
		qty := fmt.Sprintf("%g", h.Quantity)
		if a.Class == stockio.Crypto {
			qty = fmt.Sprintf("%.6f", h.Quantity)
		}
		view.Holdings = append(view.Holdings, HoldingRow{
			Code:     a.Code,
			Name:     a.Name,
			Class:    a.Class.String(),
			Quantity: qty,
			Price:    stockio.M(a.CurrentPrice, "IDR"),
			Value:    stockio.M(h.Quantity*a.CurrentPrice, "IDR"),
		})
	}
	return view
}

// Valuation renders the portfolio view to markdown.
func Valuation(catalog *stockio.Catalog, p *stockio.Portfolio) string {
	partials := map[string]string{
		"valuation_holdings": "valuation_holdings.md",
	}
	return renderTemplate("valuation", "valuation.md", partials, NewValuationView(catalog, p))
}

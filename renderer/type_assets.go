package renderer

import (
	"fmt"

	"github.com/etnz/stockio"
)

// AssetList is the view of the market screen: one row per tradable asset.
type AssetList struct {
	Title string
	Rows  []AssetRow
}

// AssetRow is a single asset formatted for display.
type AssetRow struct {
	Code   string
	Name   string
	Class  string
	Price  stockio.Money
	Change string
}

// NewAssetList builds the market view over a catalog snapshot.
func NewAssetList(assets []stockio.Asset) *AssetList {
	l := &AssetList{Title: "Market"}
	for _, a := range assets {
		l.Rows = append(l.Rows, AssetRow{
			Code:   a.Code,
			Name:   a.Name,
			Class:  a.Class.String(),
			Price:  stockio.M(a.CurrentPrice, "IDR"),
			Change: fmt.Sprintf("%+.2f%%", a.ChangePercent),
		})
	}
	return l
}

// Assets renders the market view to markdown.
func Assets(assets []stockio.Asset) string {
	return renderTemplate("assets", "assets.md", nil, NewAssetList(assets))
}

// AssetDetail renders the detail view of a single asset.
func AssetDetail(a stockio.Asset) string {
	data := struct {
		AssetRow
		Description string
		IPODate     string
		MarketCap   stockio.Money
		Volume      int64
		Days        int
	}{
		AssetRow: AssetRow{
			Code:   a.Code,
			Name:   a.Name,
			Class:  a.Class.String(),
			Price:  stockio.M(a.CurrentPrice, "IDR"),
			Change: fmt.Sprintf("%+.2f%%", a.ChangePercent),
		},
		Description: a.Description,
		IPODate:     a.IPODate,
		MarketCap:   stockio.M(a.MarketCap, "IDR"),
		Volume:      a.Volume,
		Days:        len(a.History),
	}
	return renderTemplate("asset_detail", "asset_detail.md", nil, data)
}

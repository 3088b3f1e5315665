package stockio

import "fmt"

// AssetClass partitions the catalog by unit semantics: equities trade in
// whole lots, cryptocurrencies in fractional units bought for a monetary
// amount. The Buy boundary switches exhaustively on this type.
type AssetClass int

const (
	// Equity is an exchange-listed stock, traded in integer lots.
	Equity AssetClass = iota
	// Crypto is a cryptocurrency, traded in fractional units.
	Crypto
)

func (c AssetClass) String() string {
	switch c {
	case Equity:
		return "equity"
	case Crypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch s {
	case "equity":
		return Equity, nil
	case "crypto":
		return Crypto, nil
	default:
		return 0, fmt.Errorf("unknown asset class: %q", s)
	}
}

// StyleKey is an opaque identifier naming the visual style of an asset.
// The core never interprets it; rendering collaborators resolve it to
// whatever colors or icons they use.
type StyleKey string

// Asset is the reference record for a single tradable instrument.
//
// Identity and descriptive fields are fixed at catalog load time.
// CurrentPrice, ChangePercent and History are market attributes that the
// catalog may replace wholesale on a price refresh; nothing else mutates
// them.
type Asset struct {
	ID    string
	Code  string
	Name  string
	Class AssetClass
	Style StyleKey

	CurrentPrice  float64
	ChangePercent float64
	History       []float64 // chronological, oldest first

	// Swing bounds the daily change drawn on refresh, in percent:
	// ChangePercent is uniform in [-Swing, Swing].
	Swing float64

	// Inert descriptive metadata, untouched by the engine.
	Description string
	IPODate     string
	MarketCap   float64
	Volume      int64
}

// clone returns a copy of the asset whose History no one else aliases.
func (a Asset) clone() Asset {
	if a.History != nil {
		h := make([]float64, len(a.History))
		copy(h, a.History)
		a.History = h
	}
	return a
}

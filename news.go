package stockio

// NewsCategory scopes a news article to one side of the market.
type NewsCategory int

const (
	// NewsEquity covers IDX-listed stocks and the composite index.
	NewsEquity NewsCategory = iota
	// NewsCrypto covers cryptocurrencies.
	NewsCrypto
)

func (c NewsCategory) String() string {
	switch c {
	case NewsEquity:
		return "equity"
	case NewsCrypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// NewsArticle is a static mock headline shown in the news feed. There is no
// ingestion behind it; the feed ships with the application.
type NewsArticle struct {
	ID        string
	Title     string
	Summary   string
	Portal    string
	Published string
	Category  NewsCategory
	Breaking  bool
}

// SampleNews returns the mock news feed, optionally filtered by category.
// Pass a negative category for the full feed.
func SampleNews(category NewsCategory) []NewsArticle {
	all := sampleArticles()
	if category < 0 {
		return all
	}
	out := make([]NewsArticle, 0, len(all))
	for _, a := range all {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

func sampleArticles() []NewsArticle {
	return []NewsArticle{
		{
			ID: "1", Title: "IHSG Ditutup Menguat 0,84% ke Level 7.425",
			Summary: "Indeks Harga Saham Gabungan (IHSG) ditutup menguat 0,84% atau 62,17 poin ke level 7.425,23 pada perdagangan hari ini.",
			Portal:  "Detik Finance", Published: "21 Juni 2025", Category: NewsEquity,
		},
		{
			ID: "2", Title: "Bank Central Asia (BBCA) Bukukan Laba Bersih Rp 39,3 Triliun",
			Summary: "PT Bank Central Asia Tbk (BBCA) membukukan laba bersih sebesar Rp 39,3 triliun pada tahun 2024, meningkat 11,2% dibanding tahun sebelumnya.",
			Portal:  "Kontan", Published: "20 Juni 2025", Category: NewsEquity, Breaking: true,
		},
		{
			ID: "3", Title: "Saham GOTO Melonjak 8% Setelah Pengumuman Kemitraan Strategis",
			Summary: "Harga saham GoTo (GOTO) mengalami kenaikan signifikan 8% setelah perusahaan mengumumkan kemitraan strategis dengan perusahaan teknologi global.",
			Portal:  "Bisnis.com", Published: "20 Juni 2025", Category: NewsEquity,
		},
		{
			ID: "4", Title: "Bank Mandiri Targetkan Kredit Tumbuh 8-10% di 2025",
			Summary: "PT Bank Mandiri Tbk menargetkan pertumbuhan kredit sebesar 8-10% pada tahun 2025, didorong oleh pemulihan ekonomi nasional.",
			Portal:  "Investor Daily", Published: "19 Juni 2025", Category: NewsEquity,
		},
		{
			ID: "5", Title: "Telkom Indonesia Luncurkan Layanan 5G di 50 Kota",
			Summary: "PT Telkom Indonesia Tbk mengumumkan peluncuran layanan 5G di 50 kota besar Indonesia sebagai bagian dari transformasi digital nasional.",
			Portal:  "Tempo", Published: "19 Juni 2025", Category: NewsEquity,
		},
		{
			ID: "6", Title: "Bitcoin Tembus Rp 800 Juta, Analyst Prediksi Bullish Run",
			Summary: "Harga Bitcoin menembus level Rp 800 juta per koin, dengan para analis memprediksi trend bullish akan berlanjut hingga akhir tahun.",
			Portal:  "CoinDesk Indonesia", Published: "21 Juni 2025", Category: NewsCrypto, Breaking: true,
		},
		{
			ID: "7", Title: "Ethereum 2.0 Staking Rewards Mencapai 12% APY",
			Summary: "Staking rewards untuk Ethereum 2.0 mencapai level tertinggi 12% APY, menarik minat investor institusional untuk berpartisipasi.",
			Portal:  "Crypto News ID", Published: "21 Juni 2025", Category: NewsCrypto,
		},
		{
			ID: "8", Title: "Binance Coin (BNB) Raih All-Time High Baru di Rp 4,5 Juta",
			Summary: "BNB mencatatkan rekor tertinggi baru di level Rp 4,5 juta setelah Binance mengumumkan program buyback token yang agresif.",
			Portal:  "Blockchain Media", Published: "20 Juni 2025", Category: NewsCrypto,
		},
		{
			ID: "9", Title: "Solana Labs Umumkan Kemitraan dengan Google Cloud",
			Summary: "Solana Labs menjalin kemitraan strategis dengan Google Cloud untuk mengembangkan infrastruktur Web3 dan mempercepat adopsi blockchain.",
			Portal:  "Tech Crypto", Published: "19 Juni 2025", Category: NewsCrypto,
		},
		{
			ID: "10", Title: "Central Bank Digital Currency (CBDC) Indonesia Masuki Fase Pilot",
			Summary: "Bank Indonesia mengumumkan peluncuran fase pilot untuk Rupiah Digital (CBDC), menandai langkah penting dalam modernisasi sistem pembayaran nasional.",
			Portal:  "Fintech Indonesia", Published: "18 Juni 2025", Category: NewsCrypto, Breaking: true,
		},
	}
}

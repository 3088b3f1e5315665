package stockio

// SampleCatalog builds the mock market every run starts from: fourteen
// IDX-listed equities and five cryptocurrencies, priced in rupiah. Daily
// changes and price histories are generated on construction.
func SampleCatalog(sim *Simulator, historyDays int) *Catalog {
	assets := sampleAssets()
	for i := range assets {
		assets[i].ChangePercent = sim.ChangePercent(assets[i].Swing)
	}
	return NewCatalog(sim, historyDays, assets...)
}

func sampleAssets() []Asset {
	return []Asset{
		{
			ID: "1", Code: "BBCA", Name: "Bank Central Asia", Class: Equity, Style: "blue",
			CurrentPrice: 8750, Swing: 5,
			Description: "Bank Central Asia (BCA) is one of the largest private banks in Indonesia providing retail and commercial banking services.",
			IPODate:     "May 31, 2000", MarketCap: 1_050_000_000_000, Volume: 25_000_000,
		},
		{
			ID: "2", Code: "BBRI", Name: "Bank Rakyat Indonesia", Class: Equity, Style: "green",
			CurrentPrice: 4520, Swing: 5,
			Description: "Bank Rakyat Indonesia (BRI) is a state-owned bank focusing on micro and SME segments with the widest network in Indonesia.",
			IPODate:     "November 10, 2003", MarketCap: 850_000_000_000, Volume: 35_000_000,
		},
		{
			ID: "3", Code: "TLKM", Name: "Telkom Indonesia", Class: Equity, Style: "red",
			CurrentPrice: 3890, Swing: 4,
			Description: "Telkom Indonesia is the largest telecommunications company in Indonesia providing telecommunications and digital services.",
			IPODate:     "November 14, 1995", MarketCap: 380_000_000_000, Volume: 20_000_000,
		},
		{
			ID: "4", Code: "GOTO", Name: "Goto Gojek Tokopedia", Class: Equity, Style: "emerald",
			CurrentPrice: 86, Swing: 8,
			Description: "GoTo is Indonesia's largest digital ecosystem platform combining Gojek and Tokopedia services.",
			IPODate:     "April 11, 2022", MarketCap: 150_000_000_000, Volume: 50_000_000,
		},
		{
			ID: "5", Code: "UNVR", Name: "Unilever Indonesia", Class: Equity, Style: "azure",
			CurrentPrice: 2450, Swing: 3,
			Description: "Unilever Indonesia is a consumer goods company that produces household and personal care products.",
			IPODate:     "January 11, 1982", MarketCap: 340_000_000_000, Volume: 8_000_000,
		},
		{
			ID: "6", Code: "ADRO", Name: "Adaro Energy", Class: Equity, Style: "brown",
			CurrentPrice: 2890, Swing: 6,
			Description: "Adaro Energy is Indonesia's largest coal mining company with integrated operations from upstream to downstream.",
			IPODate:     "July 16, 2008", MarketCap: 520_000_000_000, Volume: 85_000_000,
		},
		{
			ID: "7", Code: "BMRI", Name: "Bank Mandiri", Class: Equity, Style: "blue",
			CurrentPrice: 9150, Swing: 4,
			Description: "Bank Mandiri is Indonesia's largest bank providing universal banking services for retail and corporate segments.",
			IPODate:     "July 14, 2003", MarketCap: 1_200_000_000_000, Volume: 22_000_000,
		},
		{
			ID: "8", Code: "ASII", Name: "Astra International", Class: Equity, Style: "purple",
			CurrentPrice: 5100, Swing: 3,
			Description: "Astra International is Indonesia's largest conglomerate with automotive, heavy equipment, mining, and financial services businesses.",
			IPODate:     "April 4, 1990", MarketCap: 780_000_000_000, Volume: 18_000_000,
		},
		{
			ID: "9", Code: "ICBP", Name: "Indofood CBP Sukses Makmur", Class: Equity, Style: "orange",
			CurrentPrice: 9025, Swing: 2,
			Description: "Indofood CBP is Indonesia's largest food and beverage company with famous brands like Indomie and Chitato.",
			IPODate:     "October 7, 2010", MarketCap: 890_000_000_000, Volume: 12_000_000,
		},
		{
			ID: "10", Code: "KLBF", Name: "Kalbe Farma", Class: Equity, Style: "teal",
			CurrentPrice: 1555, Swing: 3,
			Description: "Kalbe Farma is Indonesia's largest pharmaceutical company producing medicines and health products.",
			IPODate:     "July 30, 1991", MarketCap: 290_000_000_000, Volume: 28_000_000,
		},
		{
			ID: "11", Code: "GGRM", Name: "Gudang Garam", Class: Equity, Style: "red",
			CurrentPrice: 18100, Swing: 4,
			Description: "Gudang Garam is Indonesia's largest kretek cigarette producer with various popular cigarette brands.",
			IPODate:     "August 27, 1990", MarketCap: 420_000_000_000, Volume: 3_500_000,
		},
		{
			ID: "12", Code: "INTP", Name: "Indocement Tunggal Prakarsa", Class: Equity, Style: "slate",
			CurrentPrice: 9400, Swing: 5,
			Description: "Indocement is Indonesia's second largest cement producer with production capacity spread across various regions.",
			IPODate:     "December 5, 1989", MarketCap: 650_000_000_000, Volume: 8_500_000,
		},
		{
			ID: "13", Code: "PGAS", Name: "Perusahaan Gas Negara", Class: Equity, Style: "green",
			CurrentPrice: 1350, Swing: 6,
			Description: "PGN is Indonesia's largest natural gas transportation and distribution company with extensive gas pipeline network.",
			IPODate:     "December 15, 2003", MarketCap: 275_000_000_000, Volume: 45_000_000,
		},
		{
			ID: "14", Code: "EXCL", Name: "XL Axiata", Class: Equity, Style: "violet",
			CurrentPrice: 2750, Swing: 5,
			Description: "XL Axiata is Indonesia's second largest mobile telecommunications operator providing voice and data services.",
			IPODate:     "September 29, 2005", MarketCap: 180_000_000_000, Volume: 32_000_000,
		},
		{
			ID: "15", Code: "BTC", Name: "Bitcoin", Class: Crypto, Style: "orange",
			CurrentPrice: 750_000_000, Swing: 10,
			Description: "Bitcoin is the world's first and largest cryptocurrency operating on decentralized blockchain technology.",
			IPODate:     "January 3, 2009", MarketCap: 14_500_000_000_000, Volume: 25_000_000_000,
		},
		{
			ID: "16", Code: "ETH", Name: "Ethereum", Class: Crypto, Style: "indigo",
			CurrentPrice: 48_000_000, Swing: 8,
			Description: "Ethereum is a blockchain platform that enables smart contracts and decentralized applications (DApps).",
			IPODate:     "July 30, 2015", MarketCap: 5_800_000_000_000, Volume: 18_000_000_000,
		},
		{
			ID: "17", Code: "BNB", Name: "Binance Coin", Class: Crypto, Style: "amber",
			CurrentPrice: 4_200_000, Swing: 6,
			Description: "Binance Coin is a utility token used in the Binance ecosystem, the world's largest cryptocurrency exchange.",
			IPODate:     "July 25, 2017", MarketCap: 630_000_000_000, Volume: 8_500_000_000,
		},
		{
			ID: "18", Code: "ADA", Name: "Cardano", Class: Crypto, Style: "navy",
			CurrentPrice: 8500, Swing: 7,
			Description: "Cardano is a proof-of-stake blockchain that focuses on sustainability and peer-reviewed research.",
			IPODate:     "October 1, 2017", MarketCap: 295_000_000_000, Volume: 3_200_000_000,
		},
		{
			ID: "19", Code: "SOL", Name: "Solana", Class: Crypto, Style: "purple",
			CurrentPrice: 2_850_000, Swing: 12,
			Description: "Solana is a high-speed blockchain that supports smart contracts and DApps with low transaction costs.",
			IPODate:     "March 16, 2020", MarketCap: 1_350_000_000_000, Volume: 12_000_000_000,
		},
	}
}

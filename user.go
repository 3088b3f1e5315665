package stockio

// User is the simulated account owner shown on the profile screen. The
// application is single-user and the profile is static.
type User struct {
	ID              string
	Name            string
	Email           string
	AccountType     string
	JoinDate        string
	TotalInvestment float64
	TotalProfit     float64
	RiskProfile     string
}

// SampleUser returns the account every run starts with. TotalInvestment is
// also the portfolio's seed cash balance.
func SampleUser() User {
	return User{
		ID:              "user_001",
		Name:            "Arthur Morgan",
		Email:           "arthur@gmail.com",
		AccountType:     "Premium",
		JoinDate:        "January 2024",
		TotalInvestment: 10_000_000,
		TotalProfit:     2_500_000,
		RiskProfile:     "Moderate",
	}
}

// StartingCash is the fixed cash balance a fresh portfolio opens with.
const StartingCash = 10_000_000

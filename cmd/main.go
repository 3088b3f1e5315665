// Package cmd implements the CLI application around the simulated
// portfolio. Nothing is persisted between runs: every command builds the
// sample market and, where relevant, a fresh portfolio.
package cmd

import (
	"flag"

	"github.com/etnz/stockio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")

	c.Register(&assetsCmd{}, "market")
	c.Register(&chartCmd{}, "market")
	c.Register(&newsCmd{}, "market")

	c.Register(&sessionCmd{}, "portfolio")
	c.Register(&profileCmd{}, "portfolio")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var startingBalance = flag.Float64("balance", stockio.StartingCash, "Cash balance a fresh session starts with")
var historyDays = flag.Int("days", 100, "Length of generated price histories, in days")
var plainOutput = flag.Bool("plain", false, "Print raw markdown instead of styled terminal output")

// newMarket builds the sample catalog every command starts from.
func newMarket() *stockio.Catalog {
	return stockio.SampleCatalog(stockio.NewSimulator(nil), *historyDays)
}

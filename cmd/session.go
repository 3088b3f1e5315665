package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/stockio"
	"github.com/etnz/stockio/renderer"
	"github.com/google/subcommands"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "open an interactive trading session" }
func (*sessionCmd) Usage() string {
	return `session

Open an interactive trading session against the simulated market. The session
starts with the -balance cash amount and holds nothing. State lives only for
the duration of the session.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market := newMarket()
	p := stockio.NewPortfolio(market, *startingBalance)

	fmt.Printf("Trading session opened with %s. Type 'help' for commands.\n",
		stockio.M(*startingBalance, "IDR"))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("stockio> ")
		if !scanner.Scan() {
			break
		}
		out, quit, err := evalSession(market, p, scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if out != "" {
			printMarkdown(out)
		}
		if quit {
			break
		}
	}
	return subcommands.ExitSuccess
}

const sessionHelp = `# Session commands

| Command | Effect |
|---|---|
| assets | list the market |
| show CODE | asset detail sheet |
| buy CODE QTY | buy lots (equity) or an IDR amount (crypto) |
| sell CODE | liquidate a holding entirely |
| value | portfolio valuation with holdings |
| refresh | move market prices one tick |
| news | market news feed |
| quit | close the session |
`

// evalSession interprets one line of the session REPL.
// It returns the markdown to print and whether the session should end.
func evalSession(market *stockio.Catalog, p *stockio.Portfolio, line string) (out string, quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "help":
		return sessionHelp, false, nil
	case "quit", "exit":
		return "", true, nil
	case "assets":
		return renderer.Assets(market.Assets()), false, nil
	case "show":
		if len(args) != 1 {
			return "", false, fmt.Errorf("usage: show CODE")
		}
		a, ok := market.FindCode(strings.ToUpper(args[0]))
		if !ok {
			return "", false, fmt.Errorf("unknown asset code %q", args[0])
		}
		return renderer.AssetDetail(a), false, nil
	case "buy":
		if len(args) != 2 {
			return "", false, fmt.Errorf("usage: buy CODE QTY")
		}
		a, ok := market.FindCode(strings.ToUpper(args[0]))
		if !ok {
			return "", false, fmt.Errorf("unknown asset code %q", args[0])
		}
		before := p.CashBalance()
		if _, err := p.Buy(a.ID, args[1]); err != nil {
			return "", false, err
		}
		cost := before - p.CashBalance()
		return fmt.Sprintf("Bought **%s** for %s. Cash: %s",
			a.Code, stockio.M(cost, "IDR"), stockio.M(p.CashBalance(), "IDR")), false, nil
	case "sell":
		if len(args) != 1 {
			return "", false, fmt.Errorf("usage: sell CODE")
		}
		a, ok := market.FindCode(strings.ToUpper(args[0]))
		if !ok {
			return "", false, fmt.Errorf("unknown asset code %q", args[0])
		}
		proceeds, err := p.Sell(a.ID)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("Sold **%s** for %s. Cash: %s",
			a.Code, stockio.M(proceeds, "IDR"), stockio.M(p.CashBalance(), "IDR")), false, nil
	case "value", "holdings":
		return renderer.Valuation(market, p), false, nil
	case "refresh":
		market.RefreshPrices()
		return renderer.Assets(market.Assets()), false, nil
	case "news":
		return renderer.News(stockio.SampleNews(-1)), false, nil
	default:
		return "", false, fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
}

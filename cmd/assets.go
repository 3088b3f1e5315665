package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/stockio"
	"github.com/etnz/stockio/renderer"
	"github.com/google/subcommands"
)

type assetsCmd struct {
	class string
	code  string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the tradable assets" }
func (*assetsCmd) Usage() string {
	return `assets [-class equity|crypto] [-code <code>]

List the assets of the simulated market with their current price and daily
change. With -code, show the full detail sheet of a single asset instead.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.class, "class", "", "Only list assets of this class (equity or crypto)")
	f.StringVar(&c.code, "code", "", "Show the detail of a single asset by its code")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market := newMarket()

	if c.code != "" {
		a, ok := market.FindCode(strings.ToUpper(c.code))
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown asset code %q\n", c.code)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.AssetDetail(a))
		return subcommands.ExitSuccess
	}

	assets := market.Assets()
	if c.class != "" {
		class, err := stockio.ParseAssetClass(c.class)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		filtered := assets[:0]
		for _, a := range assets {
			if a.Class == class {
				filtered = append(filtered, a)
			}
		}
		assets = filtered
	}

	printMarkdown(renderer.Assets(assets))
	return subcommands.ExitSuccess
}

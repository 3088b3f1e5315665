package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockio"
	"github.com/etnz/stockio/renderer"
	"github.com/google/subcommands"
)

type newsCmd struct {
	category string
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "show the market news feed" }
func (*newsCmd) Usage() string {
	return `news [-category equity|crypto]

Show the bundled market news feed, optionally filtered by category.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Only show articles of this category (equity or crypto)")
}

func (c *newsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category := stockio.NewsCategory(-1)
	switch c.category {
	case "":
	case "equity":
		category = stockio.NewsEquity
	case "crypto":
		category = stockio.NewsCrypto
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown news category %q\n", c.category)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.News(stockio.SampleNews(category)))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/stockio"
	"github.com/etnz/stockio/chartimg"
	"github.com/google/subcommands"
)

type chartCmd struct {
	code   string
	pngOut string
	svgOut string
	width  int
	height int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "export an asset price chart" }
func (*chartCmd) Usage() string {
	return `chart -code <code> [-o chart.png] [-svg chart.svg] [-w 900] [-h 400]

Export the price history of an asset as a PNG chart, an SVG sparkline, or both.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Code of the asset to chart")
	f.StringVar(&c.pngOut, "o", "", "Write a PNG chart to this file")
	f.StringVar(&c.svgOut, "svg", "", "Write an SVG sparkline to this file")
	f.IntVar(&c.width, "w", 900, "Chart width in pixels")
	f.IntVar(&c.height, "h", 400, "Chart height in pixels")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		fmt.Fprintln(os.Stderr, "Error: -code is required")
		return subcommands.ExitUsageError
	}
	if c.pngOut == "" && c.svgOut == "" {
		fmt.Fprintln(os.Stderr, "Error: at least one of -o or -svg is required")
		return subcommands.ExitUsageError
	}

	market := newMarket()
	a, ok := market.FindCode(strings.ToUpper(c.code))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown asset code %q\n", c.code)
		return subcommands.ExitFailure
	}

	if c.pngOut != "" {
		png, err := chartimg.RenderPNG(a, c.width, c.height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.pngOut, png, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.pngOut, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("wrote %s\n", c.pngOut)
	}

	if c.svgOut != "" {
		g := stockio.BuildCurve(a.History, float64(c.width), float64(c.height))
		svg := chartimg.RenderSVG(g, float64(c.width), float64(c.height), a.Style)
		if err := os.WriteFile(c.svgOut, svg, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.svgOut, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("wrote %s\n", c.svgOut)
	}

	return subcommands.ExitSuccess
}

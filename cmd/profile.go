package cmd

import (
	"context"
	"flag"

	"github.com/etnz/stockio"
	"github.com/etnz/stockio/renderer"
	"github.com/google/subcommands"
)

type profileCmd struct{}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show the demo user profile" }
func (*profileCmd) Usage() string {
	return `profile

Show the bundled demo user profile.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Profile(stockio.SampleUser()))
	return subcommands.ExitSuccess
}

package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal.
// With -plain, or when styling fails, the raw markdown is printed instead.
func printMarkdown(md string) {
	if *plainOutput {
		fmt.Println(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

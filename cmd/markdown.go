package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal can't be probed.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}

package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. If styling fails (dumb
// terminal, broken env) the raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/matzehuels/outloud/pkg/outline"
)

func (c *CLI) dumpCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print an outline as an indented bullet list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(args)
			if err != nil {
				return err
			}
			defer s.Release()

			if !cmd.Flags().Changed("width") {
				width = c.Config.Editor.Wrap
			}
			return writeTree(c.out, s.Document(), width)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "wrap lines at this width (0 disables wrapping)")
	return cmd
}

// writeTree prints every value as a bullet, indented two spaces per level.
// With width > 0 long values wrap and continuation lines align with the text.
func writeTree(w io.Writer, d *outline.Document, width int) error {
	var walk func(page outline.ValueID, depth int) error
	walk = func(page outline.ValueID, depth int) error {
		prefix := strings.Repeat("  ", depth)
		for _, v := range d.Values(page) {
			if _, err := fmt.Fprintln(w, bullet(prefix, d.Words(v), width)); err != nil {
				return err
			}
			if in := d.In(v); in != outline.NoValue {
				if err := walk(in, depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(d.Root(), 0)
}

func bullet(prefix string, words []string, width int) string {
	if len(words) == 0 {
		return prefix + "*"
	}
	text := strings.Join(words, " ")
	margin := len(prefix) + 2
	if width > 0 {
		text = wordwrap.String(text, max(width-margin, 1))
	}
	body := indent.String(text, uint(margin))
	return prefix + "* " + body[margin:]
}

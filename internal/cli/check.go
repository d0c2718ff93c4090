package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Load an outline and verify its structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			s, err := c.open(args)
			if err != nil {
				printError("%s cannot be loaded", c.docPath(args))
				return err
			}
			defer s.Release()
			prog.done(fmt.Sprintf("Loaded %s", s.Path()))

			d := s.Document()
			if err := d.Verify(); err != nil {
				printError("%s is damaged", s.Path())
				return err
			}

			st := d.Stats()
			printSuccess("%s is consistent", s.Path())
			printKeyValue("pages", strconv.Itoa(st.Pages))
			printKeyValue("values", strconv.Itoa(st.Values))
			printKeyValue("words", strconv.Itoa(st.Words))
			printKeyValue("depth", strconv.Itoa(st.Depth))
			printKeyValue("nodes", strconv.Itoa(d.Nodes()))
			return nil
		},
	}
}

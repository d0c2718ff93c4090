package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/outloud/pkg/codec"
	"github.com/matzehuels/outloud/pkg/engine"
	"github.com/matzehuels/outloud/pkg/errors"
)

func (c *CLI) editCommand() *cobra.Command {
	var (
		lineMode bool
		create   bool
	)

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit an outline word by word",
		Long: `Open an outline and edit it.

On a terminal a full-screen editor shows the outline around the cursor. Type a
word and press space or enter to send it; with an empty word the arrow keys
send up, down, in and out. Send "quit" to save and leave; ctrl+c leaves
without saving.

Otherwise, or with --line, words are read from stdin separated by whitespace
and every word gets one line of reply on stdout.

The file must exist; --create starts an empty one when it does not.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if create {
				if err := createDoc(c.docPath(args)); err != nil {
					return err
				}
			}
			s, err := c.open(args)
			if codec.IsNotExist(err) {
				return errors.Wrap(errors.ErrCodeFile, err, "%s does not exist, use --create to start it", c.docPath(args))
			}
			if err != nil {
				return err
			}
			defer s.Release()

			if lineMode || !interactive(c.in, c.out) {
				return c.runLines(cmd.Context(), s)
			}
			return c.runEditor(cmd.Context(), s)
		},
	}

	cmd.Flags().BoolVar(&lineMode, "line", false, "read words from stdin even on a terminal")
	cmd.Flags().BoolVar(&create, "create", false, "create an empty document if the file does not exist")
	return cmd
}

// runLines feeds whitespace-separated words from c.in to the session and
// writes one reply line per word. Rejected words get an "error" line. It
// stops after quit or at the end of input, which discards unsaved changes.
func (c *CLI) runLines(ctx context.Context, s *engine.Session) error {
	sc := bufio.NewScanner(c.in)
	sc.Split(bufio.ScanWords)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		resp, err := s.Interact(sc.Text())
		if err != nil {
			fmt.Fprintln(c.out, replyLine(resp, err))
			continue
		}
		fmt.Fprintln(c.out, replyLine(resp, nil))
		if resp.Status == engine.StatusQuit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeFile, err, "read input")
	}
	c.Logger.Warn("input ended without quit, changes discarded", "file", s.Path())
	return nil
}

// replyLine formats one interaction for line mode.
func replyLine(resp engine.Response, err error) string {
	if err != nil {
		return "error " + strings.ToLower(string(errors.GetCode(err)))
	}
	return strings.Join(resp.Words, " ")
}

// createDoc creates an empty document at path unless a file is already
// there. The name is validated first so no stray file is left behind.
func createDoc(path string) error {
	if err := errors.ValidateFilename(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if os.IsExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeFile, err, "create %s", path)
	}
	return f.Close()
}

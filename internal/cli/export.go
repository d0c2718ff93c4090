package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/outloud/pkg/cache"
	"github.com/matzehuels/outloud/pkg/engine"
	"github.com/matzehuels/outloud/pkg/errors"
	"github.com/matzehuels/outloud/pkg/outline"
	"github.com/matzehuels/outloud/pkg/render"
	"github.com/matzehuels/outloud/pkg/render/nodelink"
)

// Export formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
)

// svgTTL is how long rendered SVGs stay cached.
const svgTTL = 7 * 24 * time.Hour

func (c *CLI) exportCommand() *cobra.Command {
	var (
		format     string
		output     string
		horizontal bool
		noCache    bool
		at         string
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render an outline as a tree diagram",
		Long: `Render an outline as a node-link tree.

Formats: dot (Graphviz source), svg (rendered in process), pdf and png
(converted with rsvg-convert from librsvg).

--at highlights the value found by digging for the given words, as the
editor's dig command would: "buy milk in skim" finds "skim" under "buy milk".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(args)
			if err != nil {
				return err
			}
			defer s.Release()

			opts := nodelink.DefaultOptions()
			opts.Name = filepath.Base(s.Path())
			opts.LeftToRight = horizontal
			if at != "" {
				v, err := locate(s, at)
				if err != nil {
					return err
				}
				opts.Highlight = v
			}
			dot := nodelink.ToDOT(s.Document(), opts)

			store, err := newCache(noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			prog := newProgress(c.Logger)
			data, err := c.renderFormat(cmd.Context(), store, dot, format)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := c.out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return errors.Wrap(errors.ErrCodeFile, err, "write %s", output)
			}
			prog.done(fmt.Sprintf("Exported %s", format))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: dot, svg, pdf, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "lay the tree out left to right")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "render even when a cached SVG exists")
	cmd.Flags().StringVar(&at, "at", "", "highlight the value found by digging for these words")
	return cmd
}

// renderFormat turns DOT source into the requested format. PDF and PNG are
// converted from the SVG.
func (c *CLI) renderFormat(ctx context.Context, store cache.Cache, dot, format string) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatSVG, formatPDF, formatPNG:
	default:
		return nil, errors.New(errors.ErrCodePrecondition, "unknown format %q (want dot, svg, pdf or png)", format)
	}

	svg, err := c.renderSVG(ctx, store, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case formatPDF:
		return withSpinner(ctx, "Converting to PDF...", func() ([]byte, error) {
			return render.ToPDF(svg)
		})
	case formatPNG:
		return withSpinner(ctx, "Converting to PNG...", func() ([]byte, error) {
			return render.ToPNG(svg, 2.0)
		})
	}
	return svg, nil
}

// renderSVG renders dot through Graphviz unless store already holds it.
func (c *CLI) renderSVG(ctx context.Context, store cache.Cache, dot string) ([]byte, error) {
	key := cache.Key("svg", dot)
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		return data, nil
	}

	svg, err := withSpinner(ctx, "Rendering SVG...", func() ([]byte, error) {
		return nodelink.RenderSVG(ctx, dot)
	})
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, key, svg, svgTTL); err != nil {
		c.Logger.Debug("cache write failed", "err", err)
	}
	return svg, nil
}

// locate digs for the words of path from the first root value and returns
// the value found. Words the dig state treats as commands, other than "in",
// are sent as data.
func locate(s *engine.Session, path string) (outline.ValueID, error) {
	words := []string{"", "dig"}
	for _, w := range strings.Fields(path) {
		switch w {
		case "done", "cancel", "literal", "pause":
			words = append(words, "literal", w)
		default:
			words = append(words, w)
		}
	}
	words = append(words, "done")

	var resp engine.Response
	for _, w := range words {
		var err error
		if resp, err = s.Interact(w); err != nil {
			return outline.NoValue, err
		}
	}
	if len(resp.Words) == 0 || resp.Words[0] != "ok" {
		return outline.NoValue, errors.New(errors.ErrCodePrecondition, "no value matches %q", path)
	}
	return s.Cursor().Value, nil
}

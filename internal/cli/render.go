package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwalther/importgraph/pkg/cache"
	"github.com/mwalther/importgraph/pkg/errors"
	"github.com/mwalther/importgraph/pkg/graph"
	"github.com/mwalther/importgraph/pkg/render"
)

const (
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"

	// defaultScale is the PNG scale factor (2x for high-DPI displays).
	defaultScale = 2.0

	// artifactTTL bounds how long rendered artifacts stay cached.
	artifactTTL = 7 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file path (derived from input if empty)
	format  string  // svg, pdf, or png
	scale   float64 // PNG scale factor
	noCache bool    // bypass the artifact cache
}

// renderCommand creates the render command for turning a traced graph
// (DOT or JSON) into an image.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <graph.dot|graph.json>",
		Short: "Render a traced import graph to SVG, PDF, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyRenderDefaults(&opts)
			if opts.format != formatSVG && opts.format != formatPDF && opts.format != formatPNG {
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'pdf', or 'png')", opts.format)
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), pdf, png")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// applyRenderDefaults fills unset flags from the config file, then falls
// back to built-in defaults.
func (c *CLI) applyRenderDefaults(opts *renderOpts) {
	if opts.format == "" {
		opts.format = c.config.Render.Format
	}
	if opts.format == "" {
		opts.format = formatSVG
	}
	if opts.scale == 0 {
		opts.scale = c.config.Render.Scale
	}
	if opts.scale == 0 {
		opts.scale = defaultScale
	}
}

// runRender loads the graph from input, renders it (or pulls the artifact
// from the cache), and writes the image next to the input file.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	dot, nodeCount, edgeCount, err := loadDOT(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d bytes of DOT", input, len(dot))

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := artifactKey(dot, opts)
	data, cached, err := store.Get(ctx, key)
	if err != nil {
		logger.Debugf("Cache read failed: %v", err)
	}

	if !cached {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s", opts.format))
		spinner.Start()
		data, err = renderDOT(ctx, dot, opts)
		spinner.Stop()
		if err != nil {
			if spinner.Cancelled() {
				return ctx.Err()
			}
			return err
		}
		if err := store.Set(ctx, key, data, artifactTTL); err != nil {
			logger.Debugf("Cache write failed: %v", err)
		}
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteError, err, "write %s", outputPath)
	}

	printSuccess("Rendered %s", opts.format)
	printStats(nodeCount, edgeCount, cached)
	printFile(outputPath)
	return nil
}

// loadDOT reads the input graph as DOT text. JSON inputs are decoded and
// re-emitted as DOT; anything else is treated as DOT already. Node and edge
// counts are only known for JSON inputs.
func loadDOT(input string) (dot string, nodeCount, edgeCount int, err error) {
	if filepath.Ext(input) == ".json" {
		g, err := graph.ReadFile(input)
		if err != nil {
			return "", 0, 0, err
		}
		return graph.ToDOT(g, graph.DOTOptions{}), g.NodeCount(), g.EdgeCount(), nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", 0, 0, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", input)
	}
	return string(data), 0, 0, nil
}

// artifactKey derives the cache key for a render. PNG keys fold in the
// scale factor since it changes the output bytes.
func artifactKey(dot string, opts *renderOpts) string {
	format := opts.format
	if format == formatPNG {
		format = fmt.Sprintf("%s@%.2f", format, opts.scale)
	}
	return cache.ArtifactKey(dot, format)
}

// renderDOT dispatches to the renderer for the requested format.
func renderDOT(ctx context.Context, dot string, opts *renderOpts) ([]byte, error) {
	switch opts.format {
	case formatPDF:
		return render.PDF(ctx, dot)
	case formatPNG:
		return render.PNG(ctx, dot, opts.scale)
	default:
		return render.SVG(ctx, dot)
	}
}

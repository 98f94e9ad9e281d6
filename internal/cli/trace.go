package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwalther/importgraph/pkg/errors"
	"github.com/mwalther/importgraph/pkg/graph"
	"github.com/mwalther/importgraph/pkg/loader/python"
	"github.com/mwalther/importgraph/pkg/observability"
	"github.com/mwalther/importgraph/pkg/trace"
)

const (
	formatDOT  = "dot"
	formatJSON = "json"
)

// traceOpts holds the command-line flags for the trace command.
type traceOpts struct {
	paths     []string // module search paths
	dirs      []string // directories to discover root modules from
	output    string   // output file path (stdout if empty)
	filter    string   // module path filter regex
	format    string   // output format: dot or json
	graphName string   // DOT graph name
	partial   bool     // emit the graph even when a root fails
}

// traceCommand creates the trace command. It loads each root module through
// an instrumented loader so that every attempted import, root or transitive,
// is recorded as a directed edge.
func (c *CLI) traceCommand() *cobra.Command {
	opts := traceOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "trace [modules...]",
		Short: "Trace imports of root modules and emit the graph",
		Long: `Trace loads the given root modules, following every import statement
transitively, and emits the resulting import graph.

Roots can be dotted module names resolved against the search paths (-p),
or whole directories (-d) whose importable modules are discovered and
traced in turn.

Examples:
  importgraph trace mypkg                      # Trace one module
  importgraph trace -p src app.main app.cli    # Two roots, explicit path
  importgraph trace -d src -o graph.dot        # Everything under src/
  importgraph trace -d src -r 'src/.*' -f json # Filtered, as JSON`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyTraceDefaults(&opts)
			if opts.format != formatDOT && opts.format != formatJSON {
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'dot' or 'json')", opts.format)
			}
			if len(args) == 0 && len(opts.dirs) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no root modules given (pass module names or use --dir)")
			}
			return runTrace(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.paths, "path", "p", nil, "module search path (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.dirs, "dir", "d", nil, "trace every module discovered under a directory (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.filter, "filter", "r", "", "keep only edges whose module paths match this regex")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), json")
	cmd.Flags().StringVar(&opts.graphName, "graph-name", "", "DOT graph name")
	cmd.Flags().BoolVar(&opts.partial, "partial", false, "emit the graph even when a root module fails to load")

	return cmd
}

// applyTraceDefaults fills unset flags from the config file.
func (c *CLI) applyTraceDefaults(opts *traceOpts) {
	if len(opts.paths) == 0 {
		opts.paths = c.config.Paths
	}
	if opts.filter == "" {
		opts.filter = c.config.Filter
	}
	if opts.graphName == "" {
		opts.graphName = c.config.GraphName
	}
}

// runTrace builds the loader and tracer, loads every root, and writes the
// recorded graph. Without --partial, the first root failure aborts the run
// and nothing is emitted.
func runTrace(ctx context.Context, roots []string, opts *traceOpts) error {
	logger := loggerFromContext(ctx)

	paths := opts.paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	// Discovered modules resolve against their own directory.
	paths = append(paths, opts.dirs...)
	for _, p := range paths {
		if err := errors.ValidateSearchPath(p); err != nil {
			return err
		}
	}
	ldr := python.New(paths)

	roots = append([]string(nil), roots...)
	for _, dir := range opts.dirs {
		names, err := python.Discover(dir)
		if err != nil {
			return err
		}
		logger.Debugf("Discovered %d modules under %s", len(names), dir)
		roots = append(roots, names...)
	}

	var tracerOpts []trace.Option
	if opts.filter != "" {
		f, err := pathFilter(opts.filter, ldr)
		if err != nil {
			return err
		}
		tracerOpts = append(tracerOpts, trace.WithFilter(f))
	}

	g := graph.New()
	tracer := trace.New(ldr, g, tracerOpts...)
	ldr.SetImporter(tracer)

	prog := newProgress(logger)
	hooks := observability.Trace()
	failed := 0
	for _, root := range roots {
		logger.Debugf("Tracing %s", root)
		hooks.OnRootStart(ctx, root)
		start := time.Now()
		_, err := tracer.Load(ctx, root)
		hooks.OnRootComplete(ctx, root, time.Since(start), err)
		if err != nil {
			if !opts.partial {
				return err
			}
			failed++
			printWarning("%s: %s", root, errors.UserMessage(err))
		}
	}
	prog.done(fmt.Sprintf("Traced %d imports across %d modules", g.EdgeCount(), g.NodeCount()))
	if failed > 0 {
		logger.Warnf("%d of %d roots failed to load", failed, len(roots))
	}

	return writeTraceOutput(g, opts, logger)
}

// pathFilter builds an edge filter that keeps an edge only when both
// endpoint module paths match the expression. The root pseudo-node always
// passes; modules that cannot be resolved never do.
func pathFilter(expr string, ldr *python.SourceLoader) (trace.EdgeFilter, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFilter, err, "invalid filter %q", expr)
	}

	match := func(name string) bool {
		if name == graph.Root {
			return true
		}
		path := ldr.PathOf(name)
		return path != "" && re.MatchString(path)
	}
	return func(from, to string) bool {
		return match(from) && match(to)
	}, nil
}

// writeTraceOutput serializes g in the requested format to opts.output
// (or stdout if empty).
func writeTraceOutput(g *graph.Graph, opts *traceOpts, logger interface{ Infof(string, ...any) }) error {
	out, err := openOutput(opts.output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteError, err, "open output %s", opts.output)
	}
	defer out.Close()

	switch opts.format {
	case formatJSON:
		err = graph.WriteJSON(out, g)
	default:
		name := opts.graphName
		if name == "" {
			name = graph.DefaultGraphName
		}
		err = graph.WriteDOT(out, g, graph.DOTOptions{Name: name})
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		logger.Infof("Wrote graph to %s", opts.output)
		printNextStep("Render it", fmt.Sprintf("importgraph render %s", opts.output))
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowdot/flowdot/pkg/flow"
	"github.com/flowdot/flowdot/pkg/render/dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	input  string // path to the dataflow specification (required)
	output string // output file path (stdout if empty)
}

// renderCommand creates the render command: specification in, DOT out.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a dataflow specification as Graphviz DOT",
		Long: `Render a dataflow specification as Graphviz DOT.

The specification format is chosen from the input file extension
(.json, .yaml, .yml, .toml). DOT is written to stdout so it can be piped
straight into Graphviz:

  flowdot render -i spec.json | dot -Tsvg > spec.svg
  flowdot render -i spec.yaml -o spec.dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(&opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "path to the dataflow specification file")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runRender loads the specification and streams the DOT graph to the sink.
// Write failures abort mid-stream; there is no cleanup of partial output.
func (c *CLI) runRender(opts *renderOpts) error {
	g, err := flow.Import(opts.input)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded graph: %d nodes, %d edges, %d owners",
		g.NodeCount(), g.EdgeCount(), len(g.Owners()))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := dot.Write(out, g); err != nil {
		return err
	}
	if opts.output != "" {
		c.Logger.Infof("Wrote graph to %s", opts.output)
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
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowdot/flowdot/pkg/errors"
	"github.com/flowdot/flowdot/pkg/flow"
	"github.com/flowdot/flowdot/pkg/render"
	"github.com/flowdot/flowdot/pkg/render/dot"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
)

// imageOpts holds the command-line flags for the image command.
type imageOpts struct {
	input  string // path to the dataflow specification (required)
	output string // output file path (derived from input if empty)
	format string // output format: svg or png
}

// imageCommand creates the image command, which renders the diagram through
// the embedded Graphviz runtime instead of printing DOT for an external dot
// invocation.
func (c *CLI) imageCommand() *cobra.Command {
	opts := imageOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Render a dataflow specification straight to SVG or PNG",
		Long: `Render a dataflow specification straight to SVG or PNG.

This skips the external dot invocation by running Graphviz in process:

  flowdot image -i spec.json                # writes spec.svg
  flowdot image -i spec.yaml -f png -o out.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateImageFormat(opts.format); err != nil {
				return err
			}
			return c.runImage(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "path to the dataflow specification file")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (derived from input if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png")

	return cmd
}

// validateImageFormat checks that the format is either "svg" or "png".
func validateImageFormat(f string) error {
	if f != formatSVG && f != formatPNG {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg' or 'png')", f)
	}
	return nil
}

// imagePath derives the output path from the output flag and input path.
// If output is empty, the input extension is replaced with the format.
func imagePath(output, input, format string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runImage loads the specification, converts it to DOT, and rasterizes it.
func (c *CLI) runImage(ctx context.Context, opts *imageOpts) error {
	g, err := flow.Import(opts.input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	d := dot.ToDOT(g)
	c.Logger.Debugf("Generated DOT: %d bytes", len(d))

	var data []byte
	switch opts.format {
	case formatSVG:
		data, err = render.SVG(ctx, d)
	case formatPNG:
		data, err = render.PNG(ctx, d)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", opts.format)
	}
	if err != nil {
		return err
	}

	path := imagePath(opts.output, opts.input, opts.format)
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWriteFailed, err, "write %s", path)
	}
	prog.done(fmt.Sprintf("Generated %s", path))
	return nil
}

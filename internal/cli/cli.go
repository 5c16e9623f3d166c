// Package cli implements the flowdot command-line interface.
//
// The CLI is built using cobra and logs to stderr via the charmbracelet/log
// library so that pipeline output on stdout stays clean for piping into the
// Graphviz `dot` tool. All commands support --verbose (-v) for debug-level
// logging; loggers are passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/flowdot/flowdot/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "flowdot",
		Short:        "Flowdot renders dataflow specifications as Graphviz diagrams",
		Long:         `Flowdot converts a declarative dataflow specification (data artifacts and the functions that consume and produce them) into Graphviz DOT, colouring functions by owner and emitting a legend of the colour assignment.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.imageCommand())
	root.AddCommand(c.ownersCommand())
	root.AddCommand(c.completionCommand())

	return root
}

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/flowdot/flowdot/pkg/flow"
	"github.com/flowdot/flowdot/pkg/render/dot"
)

// ownersCommand creates the owners command, which prints the owner-to-colour
// assignment a render of the same specification would use.
func (c *CLI) ownersCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "owners",
		Short: "Show the owner colour assignment for a specification",
		Long: `Show the owner colour assignment for a specification.

Owners are listed in roster order (sorted, deduplicated), which is the order
colour indices are assigned in. With more than 8 distinct owners the palette
wraps and owners share colours.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOwners(cmd.OutOrStdout(), input)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path to the dataflow specification file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runOwners loads the specification and prints the roster table.
func (c *CLI) runOwners(w io.Writer, input string) error {
	g, err := flow.Import(input)
	if err != nil {
		return err
	}

	owners := g.Owners()
	if len(owners) == 0 {
		c.Logger.Warn("Specification declares no functions, so there are no owners")
		return nil
	}

	colors := dot.Colors(g)
	rows := make([][]string, len(owners))
	for i, owner := range owners {
		rows[i] = []string{owner, colors[owner].String(), strconv.Itoa(colors[owner].Index())}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Owner", "Colour", "Index").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return styleOwner
			}
			return styleColour
		})

	_, err = fmt.Fprintln(w, t)
	return err
}

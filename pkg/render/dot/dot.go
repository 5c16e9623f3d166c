// Package dot converts a dataflow graph to Graphviz DOT format.
//
// Functions are coloured according to their owner from the [Dark28] scheme,
// wrapping if we run out of colours, and a legend cluster enumerates the
// owner-to-colour assignment. The emitted DOT is meant to be piped into the
// layout tool:
//
//	flowdot render -i spec.json | dot -Tsvg > spec.svg
package dot

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/flowdot/flowdot/pkg/errors"
	"github.com/flowdot/flowdot/pkg/flow"
)

// Colors assigns each distinct owner in g a palette colour. Owners are
// sorted and deduplicated first, so the mapping depends only on the set of
// owner strings, never on function order or duplicates. Owner at roster
// position i gets colour index (i mod 8) + 1.
func Colors(g *flow.Graph) map[string]Color {
	owners := g.Owners()
	colors := make(map[string]Color, len(owners))
	for i, owner := range owners {
		colors[owner] = Dark28.Color(i)
	}
	return colors
}

// Write converts g to DOT and streams it to w line by line.
//
// Emission order: one box node per data artifact in input order, then per
// function (in input order) a filled ellipse node followed by its input and
// output edges, then the legend cluster. Edge endpoints are emitted verbatim
// without checking that they name a declared node; Graphviz creates implicit
// default nodes for unseen names.
//
// The transform is single pass and stateless. The first write failure aborts
// it with an OUTPUT_WRITE_FAILED error; lines already written stay written.
func Write(w io.Writer, g *flow.Graph) error {
	colors := Colors(g)
	ew := &errWriter{w: w}

	ew.printf("digraph G {\n")
	for _, d := range g.Data {
		ew.printf("%q [shape=%s]\n", d.Name, ShapeBox)
	}
	for _, f := range g.Functions {
		ew.printf("%q [shape=%s,style=filled,fillcolor=%q]\n", f.Name, ShapeEllipse, colors[f.Owner])
		for _, in := range f.Inputs {
			ew.printf("%q -> %q\n", in, f.Name)
		}
		for _, out := range f.Outputs {
			ew.printf("%q -> %q\n", f.Name, out)
		}
	}
	writeLegend(ew, g.Owners(), colors)
	ew.printf("}\n")

	if ew.err != nil {
		return errors.Wrap(errors.ErrCodeOutputWriteFailed, ew.err, "write graph")
	}
	return nil
}

// ToDOT converts g to a DOT string. It is a buffered convenience around
// [Write] for callers that want the whole document at once, e.g. to hand to
// [github.com/flowdot/flowdot/pkg/render.SVG].
func ToDOT(g *flow.Graph) string {
	var buf bytes.Buffer
	_ = Write(&buf, g) // writes to a buffer cannot fail
	return buf.String()
}

// writeLegend emits the cluster_legend subgraph: one filled node per owner
// in sorted roster order, chained with invisible edges to force vertical
// stacking. The chain carries no semantic meaning and is omitted entirely
// for fewer than two owners.
func writeLegend(ew *errWriter, owners []string, colors map[string]Color) {
	ew.printf("subgraph cluster_legend {\n")
	ew.printf("label=\"Legend\"\n")
	ew.printf("rankdir=TB\n")

	ids := make([]string, len(owners))
	for i, owner := range owners {
		ids[i] = legendID(owner)
		ew.printf("%s [label=%q,style=filled,fillcolor=%q]\n", ids[i], owner, colors[owner])
	}
	if len(ids) > 1 {
		ew.printf("%s [style=invis]\n", strings.Join(ids, "->"))
	}
	ew.printf("}\n")
}

// nonIdent matches characters that are not valid in a bare DOT identifier.
var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]`)

// legendID builds the legend node identifier for an owner. The owner name is
// sanitized so the legend_ prefix composes into a single bare identifier;
// the human-readable name goes into the label attribute instead.
func legendID(owner string) string {
	return "legend_" + nonIdent.ReplaceAllString(owner, "_")
}

// errWriter remembers the first write error and drops subsequent writes,
// which keeps the emission loops free of per-line error checks.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

package dot

import "fmt"

// Shape is a closed enumeration of node shapes. A closed vocabulary keeps
// attribute values well formed; new shapes are added as new variants with a
// to-text mapping, never as free strings.
type Shape int

const (
	// ShapeBox is the rectangular shape used for data artifacts.
	ShapeBox Shape = iota
	// ShapeEllipse is the elliptical shape used for functions.
	ShapeEllipse
)

// String returns the Graphviz attribute value for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapeEllipse:
		return "ellipse"
	default:
		return "box"
	}
}

// Scheme is a named Graphviz colour scheme with a fixed number of entries,
// referenced by 1-based index. See https://www.graphviz.org/doc/info/colors.html
// for the scheme definitions.
type Scheme struct {
	name string
	size int
}

// Dark28 is the 8-colour "dark2" qualitative Brewer scheme. Functions are
// coloured from it by owner, wrapping when the distinct owners outnumber
// the palette.
var Dark28 = Scheme{name: "dark28", size: 8}

// Size returns the number of colours in the scheme.
func (s Scheme) Size() int { return s.size }

// Color returns the scheme colour for roster position i (0-based). Positions
// beyond the palette wrap around, so two owners may share a colour; that is
// a cosmetic limitation, not an error.
func (s Scheme) Color(i int) Color {
	return Color{scheme: s.name, index: i%s.size + 1}
}

// Color references a single colour scheme entry by 1-based index.
type Color struct {
	scheme string
	index  int
}

// Index returns the 1-based palette index.
func (c Color) Index() int { return c.index }

// String returns the Graphviz colour reference, e.g. "/dark28/3".
func (c Color) String() string {
	return fmt.Sprintf("/%s/%d", c.scheme, c.index)
}

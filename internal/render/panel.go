// Package render is the pure side of the drawing pipeline. Compose projects
// application state into a tree of widget-library-neutral panel descriptors;
// a separate adapter translates descriptors into terminal output. Nothing in
// this package touches a terminal or mutates state.
package render

import "mkts/internal/layout"

// Style is a presentation hint attached to a span of text. The adapter maps
// hints to concrete terminal styles.
type Style int

const (
	StyleText Style = iota
	StyleBrand
	StyleTitle
	StyleHeader
	StyleValue
	StyleGain
	StyleLoss
	StyleAccent
	StyleWarn
	StyleMuted
	StyleBold
)

// Span is a run of text with one style hint.
type Span struct {
	Text  string
	Style Style
}

// Line is a sequence of spans rendered on one row.
type Line []Span

// Content is the payload of a leaf panel. Each kind corresponds to one
// generic widget primitive the adapter knows how to draw.
type Content interface {
	content()
}

// Paragraph is free-form styled text.
type Paragraph struct {
	Lines []Line
}

// Table is a fixed-column table with an optional highlighted row.
type Table struct {
	Header []string
	Widths []int
	Rows   []TableRow
}

// TableRow is one table row; Selected rows are highlighted by the adapter.
type TableRow struct {
	Cells    []Span
	Selected bool
}

// List is a vertical list of items. Selected is the highlighted index, or -1
// for no highlight.
type List struct {
	Items    []Span
	Selected int
}

// Gauge is a horizontal ratio bar. Ratio is always within [0, 1].
type Gauge struct {
	Ratio float64
	Label string
}

// Sparkline is a compact series chart over normalized samples.
type Sparkline struct {
	Samples []uint64
}

func (Paragraph) content() {}
func (Table) content()     {}
func (List) content()      {}
func (Gauge) content()     {}
func (Sparkline) content() {}

// Panel is one leaf region of the screen: where to draw, what to draw, and
// how to frame it.
type Panel struct {
	Name    string
	Title   string
	Border  bool
	Rect    layout.Rect
	Content Content
}

// Node is a region of the composed frame: either a split into children along
// one axis, or a leaf panel.
type Node struct {
	Rect     layout.Rect
	Dir      layout.Direction
	Children []*Node
	Panel    *Panel
}

// Leaves returns the tree's panels in drawing order.
func (n *Node) Leaves() []*Panel {
	if n == nil {
		return nil
	}
	if n.Panel != nil {
		return []*Panel{n.Panel}
	}
	var out []*Panel
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

func leaf(name string, r layout.Rect, c Content) *Node {
	return &Node{Rect: r, Panel: &Panel{Name: name, Rect: r, Content: c}}
}

func framed(name, title string, r layout.Rect, c Content) *Node {
	return &Node{Rect: r, Panel: &Panel{Name: name, Title: title, Border: true, Rect: r, Content: c}}
}

// titled is a borderless panel with a title row, for regions too short to
// afford a frame.
func titled(name, title string, r layout.Rect, c Content) *Node {
	return &Node{Rect: r, Panel: &Panel{Name: name, Title: title, Rect: r, Content: c}}
}

func split(dir layout.Direction, r layout.Rect, children ...*Node) *Node {
	return &Node{Rect: r, Dir: dir, Children: children}
}

package main

// Node sizing comes in two tiers keyed off the drawing surface width. Narrow
// surfaces get smaller boxes plus a hit padding so touch-sized pointers can
// still land on them.
const (
	compactWidthThreshold = 600.0

	regularNodeWidth  = 120.0
	regularNodeHeight = 40.0
	compactNodeWidth  = 100.0
	compactNodeHeight = 35.0
	compactHitPadding = 5.0

	regularHSpacing = 150.0
	regularVSpacing = 60.0
	compactHSpacing = 120.0
	compactVSpacing = 50.0
)

// Node is a single mind-map entry. Positions are the box center in virtual
// space; Children holds child ids in insertion order, which is also the
// stacking order used for hit testing and rendering.
type Node struct {
	ID       int
	Text     string
	X        float64
	Y        float64
	Children []int
}

func newNode(id int, text string, x, y float64) Node {
	return Node{ID: id, Text: text, X: x, Y: y}
}

// NodeSize returns the rendered box size for the given surface width.
func NodeSize(viewportWidth float64) (w, h float64) {
	if viewportWidth < compactWidthThreshold {
		return compactNodeWidth, compactNodeHeight
	}
	return regularNodeWidth, regularNodeHeight
}

func childSpacing(viewportWidth float64) (h, v float64) {
	if viewportWidth < compactWidthThreshold {
		return compactHSpacing, compactVSpacing
	}
	return regularHSpacing, regularVSpacing
}

// ContainsPoint reports whether the virtual-space point (px, py) falls inside
// the node's box. The compact tier grows the test box by a fixed padding on
// every side; the regular tier tests the exact box.
func (n *Node) ContainsPoint(px, py, viewportWidth float64) bool {
	w, h := NodeSize(viewportWidth)
	padding := 0.0
	if viewportWidth < compactWidthThreshold {
		padding = compactHitPadding
	}
	return px >= n.X-w/2-padding &&
		px <= n.X+w/2+padding &&
		py >= n.Y-h/2-padding &&
		py <= n.Y+h/2+padding
}

package main

// point is a 2D coordinate in virtual or screen space depending on context.
type point struct {
	X, Y float64
}

// rect is an axis-aligned rectangle with Min <= Max on both axes.
type rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func rectBetween(a, b point) rect {
	r := rect{MinX: a.X, MinY: a.Y, MaxX: b.X, MaxY: b.Y}
	if r.MinX > r.MaxX {
		r.MinX, r.MaxX = r.MaxX, r.MinX
	}
	if r.MinY > r.MaxY {
		r.MinY, r.MaxY = r.MaxY, r.MinY
	}
	return r
}

// contains tests the closed rectangle.
func (r rect) contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// mode is the exclusive interaction state. Exactly one is active at any time;
// the per-mode payload fields in Engine are only meaningful while their mode
// is current.
type mode int

const (
	modeIdle mode = iota
	modePanning
	modeDragging
	modeAreaSelect
)

// Modifiers carries the modifier flags attached to a pointer event. Shift
// turns an empty-space press into a rubber-band selection instead of a pan.
type Modifiers struct {
	Shift bool
}

// Engine is the interaction core: it owns the document, the selection, the
// viewport offset and the exclusive pointer mode, and turns normalized
// pointer/keyboard events into mutations. Callers re-render after every
// event; the engine itself holds no drawing state.
type Engine struct {
	doc *MindMap
	sel *Selection

	viewportWidth  float64
	viewportHeight float64

	// Pan offset: screen = virtual + offset.
	offset point

	mode mode

	// modePanning payload: last pointer position, so the offset accumulates
	// incremental deltas along the whole drag path.
	panAnchor point

	// modeDragging payload: pointer-to-node offset per dragged node, captured
	// at press time and held constant so nodes follow the pointer rigidly.
	dragOffsets map[int]point

	// modeAreaSelect payload: rubber-band corners in screen space.
	areaStart point
	areaEnd   point

	// Force-pan modifier state: while set, every press pans no matter what is
	// under the pointer.
	forcePan bool
}

// NewEngine creates an engine with a root node centered on the given surface.
// The root starts out selected.
func NewEngine(rootText string, viewportWidth, viewportHeight float64) *Engine {
	e := &Engine{
		doc:            NewMindMap(),
		sel:            NewSelection(),
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		dragOffsets:    make(map[int]point),
	}
	rootID := e.doc.CreateRoot(rootText, viewportWidth/2, viewportHeight/2)
	e.sel.Select(rootID)
	return e
}

// SetViewportSize records the current drawing-surface size. The width drives
// the two node size tiers.
func (e *Engine) SetViewportSize(w, h float64) {
	e.viewportWidth = w
	e.viewportHeight = h
}

func (e *Engine) ViewportWidth() float64 { return e.viewportWidth }

// SetForcePan switches the force-pan modifier on or off.
func (e *Engine) SetForcePan(on bool) { e.forcePan = on }

func (e *Engine) ForcePan() bool { return e.forcePan }

// Offset returns the current viewport pan offset.
func (e *Engine) Offset() (float64, float64) {
	return e.offset.X, e.offset.Y
}

// PanBy shifts the viewport offset directly, for keyboard or wheel panning.
func (e *Engine) PanBy(dx, dy float64) {
	e.offset.X += dx
	e.offset.Y += dy
}

func (e *Engine) toVirtual(x, y float64) (float64, float64) {
	return x - e.offset.X, y - e.offset.Y
}

// Doc exposes the node store.
func (e *Engine) Doc() *MindMap { return e.doc }

// Nodes returns a render snapshot of all nodes.
func (e *Engine) Nodes() []Node { return e.doc.Nodes() }

// SelectedIDs returns the selected node ids in ascending order.
func (e *Engine) SelectedIDs() []int { return e.sel.IDs() }

// IsSelected reports whether the node is part of the selection.
func (e *Engine) IsSelected(id int) bool { return e.sel.IsSelected(id) }

// Dragging reports whether a node drag is in progress.
func (e *Engine) Dragging() bool { return e.mode == modeDragging }

// Panning reports whether a viewport pan is in progress.
func (e *Engine) Panning() bool { return e.mode == modePanning }

// AreaRect returns the in-progress rubber-band rectangle in screen space.
func (e *Engine) AreaRect() (rect, bool) {
	if e.mode != modeAreaSelect {
		return rect{}, false
	}
	return rectBetween(e.areaStart, e.areaEnd), true
}

// PointerDown dispatches a press at screen coordinates (x, y). The decision
// tree enforces mode exclusivity: force-pan wins outright; a hit node starts
// a drag of the whole selection; empty space clears the selection and either
// pans or, with the shift modifier, starts the rubber band.
func (e *Engine) PointerDown(x, y float64, mods Modifiers) {
	if e.forcePan {
		e.mode = modePanning
		e.panAnchor = point{x, y}
		return
	}

	vx, vy := e.toVirtual(x, y)
	if id, ok := e.doc.NodeAt(vx, vy, e.viewportWidth); ok {
		// A press on an already-selected node keeps the selection intact so a
		// multi-selection can be dragged as a group; otherwise the selection
		// collapses to the hit node.
		if !e.sel.IsSelected(id) {
			e.sel.Clear()
			e.sel.Select(id)
		}
		e.beginDrag(vx, vy)
		return
	}

	e.sel.Clear()
	if mods.Shift {
		e.mode = modeAreaSelect
		e.areaStart = point{x, y}
		e.areaEnd = point{x, y}
		return
	}
	e.mode = modePanning
	e.panAnchor = point{x, y}
}

func (e *Engine) beginDrag(vx, vy float64) {
	e.mode = modeDragging
	for _, id := range e.sel.IDs() {
		n, ok := e.doc.Node(id)
		if !ok {
			continue
		}
		e.dragOffsets[id] = point{vx - n.X, vy - n.Y}
	}
}

// PointerMove dispatches a move to whichever mode is active.
func (e *Engine) PointerMove(x, y float64) {
	switch e.mode {
	case modePanning:
		e.offset.X += x - e.panAnchor.X
		e.offset.Y += y - e.panAnchor.Y
		e.panAnchor = point{x, y}
	case modeDragging:
		vx, vy := e.toVirtual(x, y)
		for id, off := range e.dragOffsets {
			e.doc.MoveTo(id, vx-off.X, vy-off.Y)
		}
	case modeAreaSelect:
		e.areaEnd = point{x, y}
	}
}

// PointerUp ends whatever interaction is in progress. A finished rubber band
// replaces the selection with the nodes whose centers fall inside it; drag
// state is discarded unconditionally either way.
func (e *Engine) PointerUp() {
	if e.mode == modeAreaSelect {
		e.resolveArea()
	}
	for id := range e.dragOffsets {
		delete(e.dragOffsets, id)
	}
	e.mode = modeIdle
}

func (e *Engine) resolveArea() {
	r := rectBetween(e.areaStart, e.areaEnd)
	vr := rect{
		MinX: r.MinX - e.offset.X,
		MinY: r.MinY - e.offset.Y,
		MaxX: r.MaxX - e.offset.X,
		MaxY: r.MaxY - e.offset.Y,
	}
	var ids []int
	for _, n := range e.doc.Nodes() {
		// Center-point containment, not box overlap.
		if vr.contains(n.X, n.Y) {
			ids = append(ids, n.ID)
		}
	}
	e.sel.Replace(ids)
}

// DoubleClick collapses the selection to the hit node, if any. Pan and drag
// state are left alone.
func (e *Engine) DoubleClick(x, y float64) {
	vx, vy := e.toVirtual(x, y)
	if id, ok := e.doc.NodeAt(vx, vy, e.viewportWidth); ok {
		e.sel.Clear()
		e.sel.Select(id)
	}
}

// KeyDown handles a normalized key name. Delete and backspace remove the
// selected nodes.
func (e *Engine) KeyDown(key string) {
	switch key {
	case "delete", "backspace":
		e.DeleteSelected()
	}
}

// DeleteSelected attempts to delete every selected node. A root in the
// selection is a per-node no-op and does not abort the batch.
func (e *Engine) DeleteSelected() {
	for _, id := range e.sel.IDs() {
		e.Delete(id)
	}
}

// Delete removes a node's subtree from the document and prunes any selection
// or drag bookkeeping pointing at removed nodes.
func (e *Engine) Delete(id int) bool {
	if !e.doc.Delete(id) {
		return false
	}
	for _, sid := range e.sel.IDs() {
		if _, ok := e.doc.Node(sid); !ok {
			e.sel.Deselect(sid)
		}
	}
	for did := range e.dragOffsets {
		if _, ok := e.doc.Node(did); !ok {
			delete(e.dragOffsets, did)
		}
	}
	return true
}

// SelectedText returns the label of the selected node. Defined only when the
// selection is a singleton.
func (e *Engine) SelectedText() (string, bool) {
	id, ok := e.sel.Single()
	if !ok {
		return "", false
	}
	n, ok := e.doc.Node(id)
	if !ok {
		return "", false
	}
	return n.Text, true
}

// UpdateSelectedText replaces the selected node's label. No-op unless the
// selection is a singleton.
func (e *Engine) UpdateSelectedText(text string) {
	if id, ok := e.sel.Single(); ok {
		e.doc.UpdateText(id, text)
	}
}

// AddChildToSelected creates a child under the selected node and returns its
// id. No-op unless the selection is a singleton.
func (e *Engine) AddChildToSelected(text string) (int, bool) {
	id, ok := e.sel.Single()
	if !ok {
		return -1, false
	}
	return e.doc.AddChild(id, text, e.viewportWidth)
}

// AdoptDocument swaps in a loaded document and resets all interaction state:
// selection back to the root, no drag, no pan in progress.
func (e *Engine) AdoptDocument(doc *MindMap, offsetX, offsetY float64) {
	e.doc = doc
	e.offset = point{offsetX, offsetY}
	e.mode = modeIdle
	e.forcePan = false
	for id := range e.dragOffsets {
		delete(e.dragOffsets, id)
	}
	e.sel.Clear()
	if root := doc.RootID(); root >= 0 {
		e.sel.Select(root)
	}
}

package main

import (
	"reflect"
	"testing"
)

func newTestEngine() *Engine {
	// Root lands at (400,300); regular size tier.
	return NewEngine("Root", 800, 600)
}

func TestRootSelectedByDefault(t *testing.T) {
	e := newTestEngine()
	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("initial selection = %v, want [0]", got)
	}
}

func TestClickSelectsNode(t *testing.T) {
	e := newTestEngine()
	a, _ := e.AddChildToSelected("A") // at (550,300)

	e.PointerDown(550, 300, Modifiers{})
	e.PointerUp()

	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{a}) {
		t.Errorf("selection = %v, want [%d]", got, a)
	}
}

func TestClickSelectedNodeKeepsMultiSelection(t *testing.T) {
	e := newTestEngine()
	e.AddChildToSelected("A")
	e.sel.Select(1) // root + child both selected

	e.PointerDown(400, 300, Modifiers{}) // press on the selected root
	defer e.PointerUp()

	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("selection = %v, want [0 1] preserved", got)
	}
}

func TestClickUnselectedNodeReplacesSelection(t *testing.T) {
	e := newTestEngine()
	a, _ := e.AddChildToSelected("A")
	b, _ := e.AddChildToSelected("B") // second child of root at (550,330)
	_ = a

	e.PointerDown(550, 330, Modifiers{})
	e.PointerUp()

	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{b}) {
		t.Errorf("selection = %v, want [%d] only", got, b)
	}
}

func TestDragSingleNode(t *testing.T) {
	e := newTestEngine()

	// Press slightly off center so the captured offset matters.
	e.PointerDown(410, 310, Modifiers{})
	if !e.Dragging() {
		t.Fatal("expected dragging mode after press on node")
	}
	e.PointerMove(500, 200)
	e.PointerUp()

	n, _ := e.Doc().Node(0)
	if n.X != 490 || n.Y != 190 {
		t.Errorf("node at (%g,%g), want (490,190): drag must preserve grab offset", n.X, n.Y)
	}
	if e.Dragging() {
		t.Error("still dragging after pointer up")
	}
}

func TestDragMultiSelectionMovesRigidly(t *testing.T) {
	e := newTestEngine()
	a, _ := e.AddChildToSelected("A") // (550,300)
	b, _ := e.Doc().AddChild(0, "B", 800)
	_ = b // (550,330)
	e.sel.Replace([]int{0, a})

	e.PointerDown(400, 300, Modifiers{}) // grab the root
	e.PointerMove(420, 290)
	e.PointerUp()

	root, _ := e.Doc().Node(0)
	child, _ := e.Doc().Node(a)
	if root.X != 420 || root.Y != 290 {
		t.Errorf("root at (%g,%g), want (420,290)", root.X, root.Y)
	}
	if child.X != 570 || child.Y != 290 {
		t.Errorf("dragged co-selection at (%g,%g), want (570,290)", child.X, child.Y)
	}
	other, _ := e.Doc().Node(b)
	if other.X != 550 || other.Y != 330 {
		t.Errorf("unselected node moved to (%g,%g)", other.X, other.Y)
	}
}

func TestEmptyClickClearsSelectionAndPans(t *testing.T) {
	e := newTestEngine()

	e.PointerDown(10, 10, Modifiers{})
	if !e.Panning() {
		t.Fatal("expected panning after empty-space press")
	}
	if got := e.SelectedIDs(); len(got) != 0 {
		t.Errorf("selection = %v, want empty", got)
	}

	e.PointerMove(20, 5)
	ox, oy := e.Offset()
	if ox != 10 || oy != -5 {
		t.Errorf("offset = (%g,%g), want (10,-5)", ox, oy)
	}
	e.PointerUp()
	if e.Panning() {
		t.Error("still panning after pointer up")
	}
}

func TestPanAccumulatesAlongPath(t *testing.T) {
	e := newTestEngine()

	e.PointerDown(0, 0, Modifiers{})
	e.PointerMove(10, 0)
	e.PointerMove(10, 10)
	e.PointerMove(0, 10)
	e.PointerUp()

	ox, oy := e.Offset()
	if ox != 0 || oy != 10 {
		t.Errorf("offset = (%g,%g), want (0,10)", ox, oy)
	}
}

func TestHitTestAccountsForPan(t *testing.T) {
	e := newTestEngine()
	e.PanBy(100, 50)

	// Root's virtual center (400,300) now sits at screen (500,350).
	e.PointerDown(500, 350, Modifiers{})
	defer e.PointerUp()
	if !e.Dragging() {
		t.Error("press on panned node position did not start a drag")
	}
}

func TestForcePanOverridesNodeHit(t *testing.T) {
	e := newTestEngine()
	e.SetForcePan(true)

	e.PointerDown(400, 300, Modifiers{}) // directly over the root
	if !e.Panning() {
		t.Fatal("force-pan press over a node must pan")
	}
	e.PointerMove(410, 300)
	e.PointerUp()

	n, _ := e.Doc().Node(0)
	if n.X != 400 || n.Y != 300 {
		t.Errorf("node moved to (%g,%g) during force-pan", n.X, n.Y)
	}
	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("selection = %v, want untouched [0]", got)
	}
}

func TestAreaSelectByCenters(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Doc().AddChild(0, "A", 800) // (550,300)
	b, _ := e.Doc().AddChild(0, "B", 800) // (550,330)
	edge, _ := e.Doc().AddChild(0, "C", 800)
	// Box overlaps the rectangle but its center is outside.
	e.Doc().MoveTo(edge, 650, 300)

	e.PointerDown(300, 250, Modifiers{Shift: true})
	if _, ok := e.AreaRect(); !ok {
		t.Fatal("expected rubber band after shift press on empty space")
	}
	e.PointerMove(600, 350)
	e.PointerUp()

	want := []int{0, a, b}
	if got := e.SelectedIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("selection = %v, want %v (center containment only)", got, want)
	}
	if _, ok := e.AreaRect(); ok {
		t.Error("rubber band persisted after release")
	}
}

func TestAreaSelectEmptyReplacesSelection(t *testing.T) {
	e := newTestEngine()

	e.PointerDown(10, 10, Modifiers{Shift: true})
	e.PointerMove(30, 30)
	e.PointerUp()

	if got := e.SelectedIDs(); len(got) != 0 {
		t.Errorf("selection = %v, want empty after empty rubber band", got)
	}
}

func TestAreaSelectNormalizesCorners(t *testing.T) {
	e := newTestEngine()

	// Drag up-left so start > end on both axes.
	e.PointerDown(600, 400, Modifiers{Shift: true})
	e.PointerMove(300, 250)
	e.PointerUp()

	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("selection = %v, want [0]", got)
	}
}

func TestAreaSelectAccountsForPan(t *testing.T) {
	e := newTestEngine()
	e.PanBy(-200, 0) // root center now at screen (200,300)

	e.PointerDown(150, 250, Modifiers{Shift: true})
	e.PointerMove(250, 350)
	e.PointerUp()

	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("selection = %v, want [0]: rectangle must convert to virtual space", got)
	}
}

func TestModeExclusivity(t *testing.T) {
	e := newTestEngine()

	// A drag in progress must not pan or grow a rubber band.
	e.PointerDown(400, 300, Modifiers{})
	e.PointerMove(420, 320)
	if e.Panning() {
		t.Error("panning while dragging")
	}
	if _, ok := e.AreaRect(); ok {
		t.Error("rubber band while dragging")
	}
	ox, oy := e.Offset()
	if ox != 0 || oy != 0 {
		t.Errorf("offset changed to (%g,%g) during node drag", ox, oy)
	}
	e.PointerUp()
}

func TestDoubleClickCollapsesSelection(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Doc().AddChild(0, "A", 800)
	e.sel.Replace([]int{0, a})

	e.DoubleClick(400, 300)
	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("selection = %v, want collapsed [0]", got)
	}
}

func TestDoubleClickEmptySpaceKeepsSelection(t *testing.T) {
	e := newTestEngine()
	e.DoubleClick(10, 10)
	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("selection = %v, want untouched [0]", got)
	}
}

func TestDeleteKeyBatchSkipsRoot(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Doc().AddChild(0, "A", 800)
	b, _ := e.Doc().AddChild(0, "B", 800)
	e.sel.Replace([]int{0, a, b})

	e.KeyDown("delete")

	if _, ok := e.Doc().Node(0); !ok {
		t.Error("root deleted by batch delete")
	}
	for _, id := range []int{a, b} {
		if _, ok := e.Doc().Node(id); ok {
			t.Errorf("node %d survived batch delete", id)
		}
	}
	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("selection = %v, want pruned to [0]", got)
	}
}

func TestDeleteDuringDragPrunesDragState(t *testing.T) {
	e := newTestEngine()
	a, _ := e.Doc().AddChild(0, "A", 800) // (550,300)
	e.sel.Replace([]int{a})

	e.PointerDown(550, 300, Modifiers{})
	e.Delete(a)
	e.PointerMove(600, 400) // must not resurrect or move the deleted node
	e.PointerUp()

	if _, ok := e.Doc().Node(a); ok {
		t.Error("deleted node still present")
	}
}

func TestSingleSelectionOperations(t *testing.T) {
	e := newTestEngine()

	if text, ok := e.SelectedText(); !ok || text != "Root" {
		t.Errorf("SelectedText() = %q,%v, want Root,true", text, ok)
	}

	e.UpdateSelectedText("Core")
	if n, _ := e.Doc().Node(0); n.Text != "Core" {
		t.Errorf("text = %q, want Core", n.Text)
	}

	// Zero selection: every single-selection operation is a no-op.
	e.sel.Clear()
	if _, ok := e.SelectedText(); ok {
		t.Error("SelectedText defined with empty selection")
	}
	e.UpdateSelectedText("nope")
	if _, ok := e.AddChildToSelected("nope"); ok {
		t.Error("AddChildToSelected succeeded with empty selection")
	}

	// Multi selection: same story.
	a, _ := e.Doc().AddChild(0, "A", 800)
	e.sel.Replace([]int{0, a})
	if _, ok := e.SelectedText(); ok {
		t.Error("SelectedText defined with multi selection")
	}
	if _, ok := e.AddChildToSelected("nope"); ok {
		t.Error("AddChildToSelected succeeded with multi selection")
	}
	if n, _ := e.Doc().Node(0); n.Text != "Core" {
		t.Errorf("text changed to %q by no-op updates", n.Text)
	}
}

func TestAdoptDocumentResetsState(t *testing.T) {
	e := newTestEngine()
	e.SetForcePan(true)
	e.PointerDown(400, 300, Modifiers{})

	doc := NewMindMap()
	root := doc.CreateRoot("Loaded", 100, 100)
	doc.AddChild(root, "kid", 800)
	e.AdoptDocument(doc, 5, -5)

	if got := e.SelectedIDs(); !reflect.DeepEqual(got, []int{root}) {
		t.Errorf("selection = %v, want [%d]", got, root)
	}
	ox, oy := e.Offset()
	if ox != 5 || oy != -5 {
		t.Errorf("offset = (%g,%g), want (5,-5)", ox, oy)
	}
	if e.Dragging() || e.Panning() || e.ForcePan() {
		t.Error("interaction state survived document swap")
	}
}

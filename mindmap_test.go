package main

import "testing"

func TestCreateRoot(t *testing.T) {
	m := NewMindMap()
	id := m.CreateRoot("Root", 400, 300)

	if id != 0 {
		t.Errorf("root id = %d, want 0", id)
	}
	if m.RootID() != id {
		t.Errorf("RootID() = %d, want %d", m.RootID(), id)
	}
	n, ok := m.Node(id)
	if !ok {
		t.Fatal("root node not found")
	}
	if n.Text != "Root" || n.X != 400 || n.Y != 300 {
		t.Errorf("root = %+v, want Root at (400,300)", n)
	}
	if _, hasParent := m.Parent(id); hasParent {
		t.Error("root must not have a parent")
	}
}

func TestCreateRootTwiceResets(t *testing.T) {
	m := NewMindMap()
	m.CreateRoot("first", 0, 0)
	m.AddChild(0, "child", 800)

	id := m.CreateRoot("second", 10, 20)
	if m.Len() != 1 {
		t.Errorf("Len() = %d after reset, want 1", m.Len())
	}
	if m.RootID() != id {
		t.Errorf("RootID() = %d, want %d", m.RootID(), id)
	}
}

func TestAddChildPlacement(t *testing.T) {
	m := NewMindMap()
	root := m.CreateRoot("Root", 400, 300)

	tests := []struct {
		name  string
		text  string
		wantX float64
		wantY float64
	}{
		{"first_child", "A", 550, 300},
		{"second_child", "B", 550, 330},
		{"third_child", "C", 550, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := m.AddChild(root, tt.text, 800)
			if !ok {
				t.Fatal("AddChild failed")
			}
			n, ok := m.Node(id)
			if !ok {
				t.Fatal("new child not found")
			}
			if n.X != tt.wantX || n.Y != tt.wantY {
				t.Errorf("position = (%g,%g), want (%g,%g)", n.X, n.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestAddChildCompactSpacing(t *testing.T) {
	m := NewMindMap()
	root := m.CreateRoot("Root", 200, 200)

	id, ok := m.AddChild(root, "A", 500)
	if !ok {
		t.Fatal("AddChild failed")
	}
	n, _ := m.Node(id)
	if n.X != 320 || n.Y != 200 {
		t.Errorf("compact first child at (%g,%g), want (320,200)", n.X, n.Y)
	}

	id, _ = m.AddChild(root, "B", 500)
	n, _ = m.Node(id)
	if n.X != 320 || n.Y != 225 {
		t.Errorf("compact second child at (%g,%g), want (320,225)", n.X, n.Y)
	}
}

func TestAddChildMissingParent(t *testing.T) {
	m := NewMindMap()
	m.CreateRoot("Root", 0, 0)

	if id, ok := m.AddChild(99, "orphan", 800); ok {
		t.Errorf("AddChild(99) succeeded with id %d, want failure", id)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (no node allocated on failure)", m.Len())
	}
}

func TestAddChildRoundTrip(t *testing.T) {
	m := NewMindMap()
	root := m.CreateRoot("Root", 0, 0)
	id, ok := m.AddChild(root, "child", 800)
	if !ok {
		t.Fatal("AddChild failed")
	}

	parent, _ := m.Node(root)
	count := 0
	for _, cid := range parent.Children {
		if cid == id {
			count++
		}
	}
	if count != 1 {
		t.Errorf("child id appears %d times in parent children, want 1", count)
	}
	if pid, ok := m.Parent(id); !ok || pid != root {
		t.Errorf("Parent(%d) = %d,%v, want %d,true", id, pid, ok, root)
	}
}

func TestUpdateText(t *testing.T) {
	m := NewMindMap()
	root := m.CreateRoot("Root", 0, 0)

	m.UpdateText(root, "")
	if n, _ := m.Node(root); n.Text != "" {
		t.Errorf("text = %q, want empty", n.Text)
	}

	m.UpdateText(42, "ghost") // unknown id is a no-op
	if m.Len() != 1 {
		t.Errorf("Len() = %d after no-op update, want 1", m.Len())
	}
}

func TestDeleteRootProtected(t *testing.T) {
	m := NewMindMap()
	root := m.CreateRoot("Root", 0, 0)

	if m.Delete(root) {
		t.Error("Delete(root) succeeded, want rejection")
	}
	if _, ok := m.Node(root); !ok {
		t.Error("root vanished after rejected delete")
	}
}

func TestDeleteSubtree(t *testing.T) {
	m := NewMindMap()
	root := m.CreateRoot("Root", 400, 300)
	a, _ := m.AddChild(root, "A", 800)
	b, _ := m.AddChild(a, "B", 800)
	c, _ := m.AddChild(b, "C", 800)
	other, _ := m.AddChild(root, "other", 800)

	if !m.Delete(a) {
		t.Fatal("Delete(a) failed")
	}

	for _, id := range []int{a, b, c} {
		if _, ok := m.Node(id); ok {
			t.Errorf("node %d still present after subtree delete", id)
		}
	}
	for _, n := range m.Nodes() {
		for _, cid := range n.Children {
			if cid == a || cid == b || cid == c {
				t.Errorf("node %d still references deleted child %d", n.ID, cid)
			}
		}
	}
	if _, ok := m.Node(other); !ok {
		t.Error("sibling outside the subtree was deleted")
	}
}

func TestDeleteIdempotent(t *testing.T) {
	m := NewMindMap()
	root := m.CreateRoot("Root", 0, 0)
	a, _ := m.AddChild(root, "A", 800)

	if !m.Delete(a) {
		t.Fatal("first delete failed")
	}
	if m.Delete(a) {
		t.Error("second delete succeeded, want no-op false")
	}
}

func TestIDsNeverReused(t *testing.T) {
	m := NewMindMap()
	root := m.CreateRoot("Root", 0, 0)
	a, _ := m.AddChild(root, "A", 800)
	m.Delete(a)

	b, _ := m.AddChild(root, "B", 800)
	if b == a {
		t.Errorf("id %d was reused after deletion", a)
	}
}

func TestSingleParentInvariant(t *testing.T) {
	m := NewMindMap()
	root := m.CreateRoot("Root", 0, 0)
	a, _ := m.AddChild(root, "A", 800)
	m.AddChild(a, "B", 800)
	m.AddChild(a, "C", 800)
	m.AddChild(root, "D", 800)

	seen := make(map[int]int)
	for _, n := range m.Nodes() {
		for _, cid := range n.Children {
			seen[cid]++
		}
	}
	for id, count := range seen {
		if count > 1 {
			t.Errorf("node %d appears in %d children lists", id, count)
		}
	}
	if seen[root] != 0 {
		t.Error("root appears as somebody's child")
	}
}

func TestNodesSnapshotIsolated(t *testing.T) {
	m := NewMindMap()
	root := m.CreateRoot("Root", 0, 0)
	m.AddChild(root, "A", 800)

	snap := m.Nodes()
	snap[0].Children[0] = 999

	parent, _ := m.Node(root)
	if parent.Children[0] == 999 {
		t.Error("mutating the snapshot corrupted the store")
	}
}

package main

// MindMap owns every node in the document. Nodes live in a slice in creation
// order (hit testing walks it backwards so later nodes win), ids are assigned
// monotonically and never reused, and parents is kept in lockstep with the
// children lists so parent lookup never needs a scan.
type MindMap struct {
	nodes   []Node
	parents map[int]int
	nextID  int
	rootID  int
	hasRoot bool
}

func NewMindMap() *MindMap {
	return &MindMap{
		parents: make(map[int]int),
		rootID:  -1,
	}
}

// CreateRoot allocates the root node. Calling it on a populated map resets
// the document: the previous tree would be orphaned otherwise.
func (m *MindMap) CreateRoot(text string, x, y float64) int {
	if m.hasRoot {
		m.nodes = m.nodes[:0]
		m.parents = make(map[int]int)
		m.nextID = 0
	}
	id := m.nextID
	m.nextID++
	m.nodes = append(m.nodes, newNode(id, text, x, y))
	m.rootID = id
	m.hasRoot = true
	return id
}

// RootID returns the root node id, or -1 before CreateRoot.
func (m *MindMap) RootID() int {
	if !m.hasRoot {
		return -1
	}
	return m.rootID
}

// Len returns the number of nodes in the document.
func (m *MindMap) Len() int {
	return len(m.nodes)
}

// AddChild creates a new node under parentID and returns its id, or -1 and
// false if the parent does not exist. The child's offset from the parent is
// computed from the parent's current child count; earlier siblings are not
// repositioned, so each addition lands further from the vertical center than
// the one before it. Deliberate-looking but asymmetric; kept as-is.
func (m *MindMap) AddChild(parentID int, text string, viewportWidth float64) (int, bool) {
	parent := m.node(parentID)
	if parent == nil {
		return -1, false
	}

	count := float64(len(parent.Children))
	hspacing, vspacing := childSpacing(viewportWidth)

	x := parent.X + hspacing
	y := parent.Y + count*vspacing - count*vspacing/2

	id := m.nextID
	m.nextID++
	m.nodes = append(m.nodes, newNode(id, text, x, y))

	// The append above may have moved the backing array; look the parent up
	// again before mutating it.
	p := m.node(parentID)
	p.Children = append(p.Children, id)
	m.parents[id] = parentID
	return id, true
}

// Node returns a copy of the node with the given id.
func (m *MindMap) Node(id int) (Node, bool) {
	if n := m.node(id); n != nil {
		out := *n
		out.Children = append([]int(nil), n.Children...)
		return out, true
	}
	return Node{}, false
}

func (m *MindMap) node(id int) *Node {
	for i := range m.nodes {
		if m.nodes[i].ID == id {
			return &m.nodes[i]
		}
	}
	return nil
}

// Parent returns the parent id of the given node. The root (and any unknown
// id) has no parent.
func (m *MindMap) Parent(id int) (int, bool) {
	pid, ok := m.parents[id]
	return pid, ok
}

// UpdateText replaces a node's label. Unknown ids are ignored; empty labels
// are allowed.
func (m *MindMap) UpdateText(id int, text string) {
	if n := m.node(id); n != nil {
		n.Text = text
	}
}

// MoveTo repositions a node in virtual space. Unknown ids are ignored.
func (m *MindMap) MoveTo(id int, x, y float64) {
	if n := m.node(id); n != nil {
		n.X = x
		n.Y = y
	}
}

// Delete removes the node and its entire subtree. The root is protected and
// ids that are already gone report false, so deleting twice is safe.
func (m *MindMap) Delete(id int) bool {
	if m.hasRoot && id == m.rootID {
		return false
	}
	n := m.node(id)
	if n == nil {
		return false
	}

	children := append([]int(nil), n.Children...)
	for _, childID := range children {
		m.Delete(childID)
	}

	for i := range m.nodes {
		m.nodes[i].Children = removeID(m.nodes[i].Children, id)
	}
	delete(m.parents, id)

	for i := range m.nodes {
		if m.nodes[i].ID == id {
			m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
			break
		}
	}
	return true
}

func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// NodeAt returns the topmost node containing the virtual-space point, walking
// creation order backwards so overlapping later nodes take priority.
func (m *MindMap) NodeAt(x, y, viewportWidth float64) (int, bool) {
	for i := len(m.nodes) - 1; i >= 0; i-- {
		if m.nodes[i].ContainsPoint(x, y, viewportWidth) {
			return m.nodes[i].ID, true
		}
	}
	return -1, false
}

// Nodes returns a snapshot of every node in creation order. Children slices
// are copied so callers cannot corrupt the tree.
func (m *MindMap) Nodes() []Node {
	out := make([]Node, len(m.nodes))
	for i, n := range m.nodes {
		out[i] = n
		out[i].Children = append([]int(nil), n.Children...)
	}
	return out
}

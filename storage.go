package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const fileHeader = "MINDMAP"

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SaveToFile writes the document plus the viewport pan offset in a
// line-oriented text format. Node records appear in creation order so a
// reload reproduces both stacking order and children order.
func (m *MindMap) SaveToFile(filename string, panX, panY float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "%s\n", fileHeader)
	fmt.Fprintf(file, "NODES:%d\n", len(m.nodes))
	for _, n := range m.nodes {
		parent := -1
		if pid, ok := m.parents[n.ID]; ok {
			parent = pid
		}
		encoded := strings.ReplaceAll(n.Text, "\n", "\\n")
		fmt.Fprintf(file, "%d,%s,%s,%d,%s\n", n.ID, formatCoord(n.X), formatCoord(n.Y), parent, encoded)
	}
	fmt.Fprintf(file, "ROOT:%d\n", m.RootID())
	fmt.Fprintf(file, "NEXTID:%d\n", m.nextID)
	fmt.Fprintf(file, "PAN:%s,%s\n", formatCoord(panX), formatCoord(panY))
	return nil
}

// LoadMindMap reads a document saved by SaveToFile and returns it along with
// the stored pan offset. The tree invariants are re-checked on the way in:
// every parent reference must point at an earlier record and the root must
// exist and have no parent.
func LoadMindMap(filename string) (*MindMap, float64, float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, 0, 0, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	if !scanner.Scan() || scanner.Text() != fileHeader {
		return nil, 0, 0, fmt.Errorf("invalid file format")
	}

	if !scanner.Scan() {
		return nil, 0, 0, fmt.Errorf("missing node count")
	}
	countStr := strings.TrimPrefix(scanner.Text(), "NODES:")
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("invalid node count: %v", err)
	}

	m := NewMindMap()
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return nil, 0, 0, fmt.Errorf("missing node record")
		}
		parts := strings.Split(scanner.Text(), ",")
		if len(parts) < 5 {
			return nil, 0, 0, fmt.Errorf("invalid node record")
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("invalid node id: %v", err)
		}
		x, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("invalid node position: %v", err)
		}
		y, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("invalid node position: %v", err)
		}
		parent, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("invalid parent id: %v", err)
		}
		text := strings.ReplaceAll(strings.Join(parts[4:], ","), "\\n", "\n")

		if m.node(id) != nil {
			return nil, 0, 0, fmt.Errorf("duplicate node id %d", id)
		}
		m.nodes = append(m.nodes, newNode(id, text, x, y))
		if id >= m.nextID {
			m.nextID = id + 1
		}
		if parent != -1 {
			p := m.node(parent)
			if p == nil {
				return nil, 0, 0, fmt.Errorf("node %d references missing parent %d", id, parent)
			}
			p.Children = append(p.Children, id)
			m.parents[id] = parent
		}
	}

	if !scanner.Scan() {
		return nil, 0, 0, fmt.Errorf("missing root record")
	}
	rootID, err := strconv.Atoi(strings.TrimPrefix(scanner.Text(), "ROOT:"))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("invalid root id: %v", err)
	}
	if m.node(rootID) == nil {
		return nil, 0, 0, fmt.Errorf("root node %d not present", rootID)
	}
	if _, hasParent := m.parents[rootID]; hasParent {
		return nil, 0, 0, fmt.Errorf("root node %d has a parent", rootID)
	}
	m.rootID = rootID
	m.hasRoot = true

	if !scanner.Scan() {
		return nil, 0, 0, fmt.Errorf("missing next-id record")
	}
	nextID, err := strconv.Atoi(strings.TrimPrefix(scanner.Text(), "NEXTID:"))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("invalid next id: %v", err)
	}
	if nextID > m.nextID {
		m.nextID = nextID
	}

	var panX, panY float64
	if scanner.Scan() {
		panParts := strings.Split(strings.TrimPrefix(scanner.Text(), "PAN:"), ",")
		if len(panParts) == 2 {
			panX, _ = strconv.ParseFloat(panParts[0], 64)
			panY, _ = strconv.ParseFloat(panParts[1], 64)
		}
	}

	return m, panX, panY, nil
}

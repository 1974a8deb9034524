package main

import "sort"

// Selection tracks the set of selected node ids. Several operations (editing
// a label, adding a child) only act when exactly one node is selected.
type Selection struct {
	ids map[int]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[int]struct{})}
}

func (s *Selection) Select(id int) {
	s.ids[id] = struct{}{}
}

func (s *Selection) Deselect(id int) {
	delete(s.ids, id)
}

func (s *Selection) Clear() {
	for id := range s.ids {
		delete(s.ids, id)
	}
}

func (s *Selection) IsSelected(id int) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Count() int {
	return len(s.ids)
}

// Single returns the selected id when the selection is exactly a singleton.
func (s *Selection) Single() (int, bool) {
	if len(s.ids) != 1 {
		return -1, false
	}
	for id := range s.ids {
		return id, true
	}
	return -1, false
}

// IDs returns the selected ids in ascending order.
func (s *Selection) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Replace swaps the whole selection for the given ids.
func (s *Selection) Replace(ids []int) {
	s.Clear()
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

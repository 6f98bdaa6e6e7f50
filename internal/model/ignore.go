package model

import "sort"

// IgnoreSet holds game IDs excluded from imports. Persisted in
// ascending order so saves are deterministic.
type IgnoreSet map[int]struct{}

// NewIgnoreSet creates an empty ignore set.
func NewIgnoreSet(ids ...int) IgnoreSet {
	s := make(IgnoreSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts an ID, reporting whether it was newly added.
func (s IgnoreSet) Add(id int) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Remove deletes an ID, reporting whether it was present.
func (s IgnoreSet) Remove(id int) bool {
	if _, ok := s[id]; !ok {
		return false
	}
	delete(s, id)
	return true
}

// Contains reports membership.
func (s IgnoreSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order.
func (s IgnoreSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

package index

// OrderedSet is a set of strings that remembers insertion order.
// The zero value is ready to use.
type OrderedSet struct {
	items []string
	index map[string]struct{}
}

// NewOrderedSet returns a set holding items, deduplicated, in first-seen order.
func NewOrderedSet(items ...string) *OrderedSet {
	s := &OrderedSet{}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *OrderedSet) Add(v string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Contains reports whether v is in the set.
func (s *OrderedSet) Contains(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of distinct items.
func (s *OrderedSet) Len() int { return len(s.items) }

// Items returns the items in insertion order. The slice is a copy.
func (s *OrderedSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

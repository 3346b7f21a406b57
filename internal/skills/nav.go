package skills

import "sort"

// NavContext is the ordered list of sibling skills within one topic
// plus the current position. Built once per session and read-only
// afterwards; it exists to answer "is there a next/previous skill"
// and to resolve suggestion targets.
type NavContext struct {
	siblings []Skill
	index    int
}

// NewNavContext builds a navigation context from the topic's sibling
// skills, ordered by Position, positioned at currentID. Returns a
// context with no neighbours when currentID is absent from siblings.
func NewNavContext(siblings []Skill, currentID string) *NavContext {
	sorted := make([]Skill, len(siblings))
	copy(sorted, siblings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	idx := -1
	for i, s := range sorted {
		if s.ID == currentID {
			idx = i
			break
		}
	}

	return &NavContext{siblings: sorted, index: idx}
}

// Current returns the current skill, or nil if the context is empty.
func (n *NavContext) Current() *Skill {
	if n.index < 0 || n.index >= len(n.siblings) {
		return nil
	}
	s := n.siblings[n.index]
	return &s
}

// HasNext reports whether a next sibling skill exists.
func (n *NavContext) HasNext() bool {
	return n.index >= 0 && n.index+1 < len(n.siblings)
}

// HasPrev reports whether a previous sibling skill exists.
func (n *NavContext) HasPrev() bool {
	return n.index > 0
}

// Next returns the next sibling skill, or nil.
func (n *NavContext) Next() *Skill {
	if !n.HasNext() {
		return nil
	}
	s := n.siblings[n.index+1]
	return &s
}

// Prev returns the previous sibling skill, or nil.
func (n *NavContext) Prev() *Skill {
	if !n.HasPrev() {
		return nil
	}
	s := n.siblings[n.index-1]
	return &s
}

// MoveNext returns a context positioned on the next sibling, or the
// receiver unchanged when there is none.
func (n *NavContext) MoveNext() *NavContext {
	if !n.HasNext() {
		return n
	}
	return &NavContext{siblings: n.siblings, index: n.index + 1}
}

// MovePrev returns a context positioned on the previous sibling, or
// the receiver unchanged when there is none.
func (n *NavContext) MovePrev() *NavContext {
	if !n.HasPrev() {
		return n
	}
	return &NavContext{siblings: n.siblings, index: n.index - 1}
}

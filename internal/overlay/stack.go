package overlay

// Entry is one position in the stack. ID is unique per push for the lifetime
// of the stack, so two entries of the same variant can be told apart.
type Entry struct {
	ID         uint64
	Descriptor Descriptor
}

// Stack is the LIFO sequence of open overlays, in the order they were opened.
// It has no side effects beyond its own contents; callers clear the action
// registry themselves when they pop or clear.
type Stack struct {
	entries []Entry
	nextID  uint64
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push adds d on top. Pushing the same variant twice yields two entries.
// A nil descriptor is ignored.
func (s *Stack) Push(d Descriptor) {
	if d == nil {
		return
	}
	s.nextID++
	s.entries = append(s.entries, Entry{ID: s.nextID, Descriptor: d})
}

// Pop removes and returns the top descriptor.
// Returns false and leaves the stack untouched if it is empty.
func (s *Stack) Pop() (Descriptor, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = Entry{}
	s.entries = s.entries[:len(s.entries)-1]
	return top.Descriptor, true
}

// Clear closes every overlay in one step.
func (s *Stack) Clear() {
	s.entries = nil
}

// Top returns the most recently pushed descriptor that has not been popped.
func (s *Stack) Top() (Descriptor, bool) {
	e, ok := s.TopEntry()
	return e.Descriptor, ok
}

// TopEntry is Top with the entry ID.
func (s *Stack) TopEntry() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of open overlays.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Kinds returns the variants from bottom to top.
func (s *Stack) Kinds() []Kind {
	out := make([]Kind, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Descriptor.Kind()
	}
	return out
}

// Contains reports whether the entry with the given ID is still open.
func (s *Stack) Contains(id uint64) bool {
	for _, e := range s.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

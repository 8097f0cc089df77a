package budget

// Selection tracks which item identifiers are chosen for bulk operations.
// It is session state only: never persisted, cleared on budget reset.
// Membership is identifier-based, so a selected item that gets deleted is
// simply filtered out by Resolve instead of causing errors later.
type Selection struct {
	ids map[string]bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]bool)}
}

// Toggle adds the id if absent and removes it if present.
func (s *Selection) Toggle(id string) {
	if s.ids[id] {
		delete(s.ids, id)
		return
	}
	s.ids[id] = true
}

// Contains reports whether the id is currently selected.
func (s *Selection) Contains(id string) bool {
	return s.ids[id]
}

// Len returns the number of selected identifiers, including stale ones.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]bool)
}

// SelectAll selects every id in allIDs. If all of them are already selected
// it clears instead: select-all acts as a toggle against the fully-selected
// state. This is deliberate, not incidental.
func (s *Selection) SelectAll(allIDs []string) {
	if len(allIDs) > 0 && s.allSelected(allIDs) {
		s.Clear()
		return
	}
	s.ids = make(map[string]bool, len(allIDs))
	for _, id := range allIDs {
		s.ids[id] = true
	}
}

func (s *Selection) allSelected(allIDs []string) bool {
	for _, id := range allIDs {
		if !s.ids[id] {
			return false
		}
	}
	return true
}

// Resolve returns the selected ids filtered to those in allIDs, preserving
// allIDs order. Identifiers of since-deleted items drop out silently.
func (s *Selection) Resolve(allIDs []string) []string {
	var out []string
	for _, id := range allIDs {
		if s.ids[id] {
			out = append(out, id)
		}
	}
	return out
}

package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_Toggle(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")
	assert.True(t, sel.Contains("a"))

	sel.Toggle("a")
	assert.False(t, sel.Contains("a"))
	assert.Equal(t, 0, sel.Len())
}

func TestSelection_SelectAllTogglesAgainstFullSelection(t *testing.T) {
	all := []string{"a", "b", "c"}
	sel := NewSelection()

	sel.SelectAll(all)
	assert.Equal(t, 3, sel.Len())

	// Already fully selected: select-all clears.
	sel.SelectAll(all)
	assert.Equal(t, 0, sel.Len())

	// Partial selection: select-all completes it.
	sel.Toggle("b")
	sel.SelectAll(all)
	assert.Equal(t, []string{"a", "b", "c"}, sel.Resolve(all))
}

func TestSelection_SelectAllEmptyLedger(t *testing.T) {
	sel := NewSelection()
	sel.SelectAll(nil)
	assert.Equal(t, 0, sel.Len())
}

func TestSelection_ResolveFiltersDeletedItems(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")
	sel.Toggle("b")
	sel.Toggle("gone")

	assert.Equal(t, []string{"a", "b"}, sel.Resolve([]string{"a", "b", "c"}))
}

func TestSelection_SurvivesUnrelatedMutation(t *testing.T) {
	s, c := newTestStore(t)
	a, _ := s.AddItem(c.ID)
	b, _ := s.AddItem(c.ID)
	cItem, _ := s.AddItem(c.ID)

	sel := NewSelection()
	sel.Toggle(a.ID)
	sel.Toggle(b.ID)

	require.NoError(t, s.UpdateItem(c.ID, cItem.ID, FieldPatch{FieldDescription: "edited"}))

	assert.Equal(t, []string{a.ID, b.ID}, sel.Resolve(s.Budget().ItemIDs()))
}

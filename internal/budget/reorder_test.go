package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrag_PickUpAndCancel(t *testing.T) {
	s, c := newTestStore(t)
	a, _ := s.AddItem(c.ID)

	d := NewDrag(s)
	assert.False(t, d.Dragging())

	d.PickUp(a.ID)
	assert.True(t, d.Dragging())
	assert.Equal(t, a.ID, d.ActiveItemID())

	d.Cancel()
	assert.False(t, d.Dragging())
}

func TestDrag_DropOnItem_InsertsBeforeTarget(t *testing.T) {
	s, c := newTestStore(t)
	a, _ := s.AddItem(c.ID)
	b, _ := s.AddItem(c.ID)
	x, _ := s.AddItem(c.ID)

	d := NewDrag(s)
	d.PickUp(x.ID)
	moved := d.DropOnItem(a.ID)

	assert.True(t, moved)
	assert.False(t, d.Dragging())
	assert.Equal(t, []string{x.ID, a.ID, b.ID}, itemIDs(c))
}

func TestDrag_DropBelowSource_SameCategory(t *testing.T) {
	s, c := newTestStore(t)
	a, _ := s.AddItem(c.ID)
	b, _ := s.AddItem(c.ID)
	x, _ := s.AddItem(c.ID)

	// Dragging the first item onto the last inserts before the last item's
	// current slot, accounting for the list shrinking on removal.
	d := NewDrag(s)
	d.PickUp(a.ID)
	require.True(t, d.DropOnItem(x.ID))
	assert.Equal(t, []string{b.ID, a.ID, x.ID}, itemIDs(c))
}

func TestDrag_DropAcrossCategories(t *testing.T) {
	s, src := newTestStore(t)
	dst := s.AddCategory("Pós-produção", "")
	a, _ := s.AddItem(src.ID)
	b, _ := s.AddItem(src.ID)
	y, _ := s.AddItem(dst.ID)

	d := NewDrag(s)
	d.PickUp(a.ID)
	require.True(t, d.DropOnItem(y.ID))

	assert.Equal(t, []string{b.ID}, itemIDs(src))
	assert.Equal(t, []string{a.ID, y.ID}, itemIDs(dst))
}

func TestDrag_DropOnCategory_AppendsToEnd(t *testing.T) {
	s, src := newTestStore(t)
	dst := s.AddCategory("Extras", "")
	a, _ := s.AddItem(src.ID)
	y, _ := s.AddItem(dst.ID)

	d := NewDrag(s)
	d.PickUp(a.ID)
	require.True(t, d.DropOnCategory(dst.ID))
	assert.Equal(t, []string{y.ID, a.ID}, itemIDs(dst))
}

func TestDrag_DropOnSelfIsNoop(t *testing.T) {
	s, c := newTestStore(t)
	a, _ := s.AddItem(c.ID)
	b, _ := s.AddItem(c.ID)

	d := NewDrag(s)
	d.PickUp(a.ID)
	assert.False(t, d.DropOnItem(a.ID))
	assert.False(t, d.Dragging())
	assert.Equal(t, []string{a.ID, b.ID}, itemIDs(c))
}

func TestDrag_SourceDeletedMidDrag(t *testing.T) {
	s, c := newTestStore(t)
	a, _ := s.AddItem(c.ID)
	b, _ := s.AddItem(c.ID)

	d := NewDrag(s)
	d.PickUp(a.ID)
	s.DeleteItem(c.ID, a.ID)

	assert.False(t, d.DropOnItem(b.ID))
	assert.False(t, d.Dragging())
	assert.Equal(t, []string{b.ID}, itemIDs(c))
}

func TestDrag_TargetDeletedMidDrag(t *testing.T) {
	s, c := newTestStore(t)
	a, _ := s.AddItem(c.ID)
	b, _ := s.AddItem(c.ID)

	d := NewDrag(s)
	d.PickUp(a.ID)
	s.DeleteItem(c.ID, b.ID)

	assert.False(t, d.DropOnItem(b.ID))
	assert.Equal(t, []string{a.ID}, itemIDs(c))
}

func TestDrag_DropWhileIdleIsNoop(t *testing.T) {
	s, c := newTestStore(t)
	a, _ := s.AddItem(c.ID)

	d := NewDrag(s)
	assert.False(t, d.DropOnItem(a.ID))
	assert.False(t, d.DropOnCategory(c.ID))
}

package budget

// Drag turns a grab-and-drop gesture into a single MoveItem call. It has two
// states: idle, and dragging one item. Picking up records the item id only;
// the move is resolved against the tree as it stands at drop time, so hover
// feedback never touches the store and concurrent edits cannot corrupt it.
type Drag struct {
	store        *Store
	activeItemID string
}

// NewDrag creates an idle drag gesture bound to a store.
func NewDrag(store *Store) *Drag {
	return &Drag{store: store}
}

// Dragging reports whether an item is currently picked up.
func (d *Drag) Dragging() bool {
	return d.activeItemID != ""
}

// ActiveItemID returns the picked-up item id, or "" when idle.
func (d *Drag) ActiveItemID() string {
	return d.activeItemID
}

// PickUp starts dragging the given item. Picking up while already dragging
// replaces the active item.
func (d *Drag) PickUp(itemID string) {
	d.activeItemID = itemID
}

// Cancel returns to idle without mutating anything.
func (d *Drag) Cancel() {
	d.activeItemID = ""
}

// DropOnItem drops the active item in front of the target item's current
// slot. Dropping on itself, on a missing target, or after the source item
// has been deleted mid-drag all return silently to idle. Returns true only
// when a move actually happened.
func (d *Drag) DropOnItem(targetItemID string) bool {
	active := d.activeItemID
	d.activeItemID = ""
	if active == "" || active == targetItemID {
		return false
	}

	b := d.store.Budget()
	srcCat, srcIdx, item := b.FindItem(active)
	if item == nil {
		return false
	}
	tgtCat, tgtIdx, target := b.FindItem(targetItemID)
	if target == nil {
		return false
	}

	// MoveItem indexes the sequence after the active item has been removed,
	// so a same-category drop below the source shifts up by one.
	if tgtCat == srcCat && srcIdx < tgtIdx {
		tgtIdx--
	}
	return d.store.MoveItem(active, tgtCat.ID, tgtIdx) == nil
}

// DropOnCategory drops the active item at the end of the given category.
// Missing source or target categories return silently to idle.
func (d *Drag) DropOnCategory(categoryID string) bool {
	active := d.activeItemID
	d.activeItemID = ""
	if active == "" {
		return false
	}

	b := d.store.Budget()
	if _, _, item := b.FindItem(active); item == nil {
		return false
	}
	target := b.FindCategory(categoryID)
	if target == nil {
		return false
	}
	return d.store.MoveItem(active, categoryID, len(target.Items)) == nil
}

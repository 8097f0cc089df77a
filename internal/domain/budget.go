package domain

// LineItem is one costed line of a quote. The identifier is assigned at
// creation and never changes afterwards.
type LineItem struct {
	ID              string
	Description     string
	LongDescription string
	Notes           string
	Active          bool
	Quantity        int
	Days            int
	Frequency       int
	UnitPriceCents  int64
	Supplier        string
	InvoiceRef      string
	Billing         BillingType
}

// LineTotalCents returns quantity × days × frequency × unit price.
// The total is always derived, never stored.
func (it *LineItem) LineTotalCents() int64 {
	return int64(it.Quantity) * int64(it.Days) * int64(it.Frequency) * it.UnitPriceCents
}

// Category is a named group of line items. Item order is display order.
type Category struct {
	ID          string
	Name        string
	Description string
	Items       []*LineItem
}

// TotalCents returns the sum of the category's line totals.
func (c *Category) TotalCents() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.LineTotalCents()
	}
	return total
}

// Budget is the root aggregate: an ordered sequence of categories, each
// owning its items exclusively.
type Budget struct {
	Title       string
	Description string
	Notes       string
	Categories  []*Category
}

// Clone returns a deep copy of the budget. Snapshots handed to another
// goroutine must be cloned first; the live tree keeps mutating.
func (b *Budget) Clone() *Budget {
	out := &Budget{
		Title:       b.Title,
		Description: b.Description,
		Notes:       b.Notes,
	}
	for _, c := range b.Categories {
		cc := &Category{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		}
		for _, it := range c.Items {
			copied := *it
			cc.Items = append(cc.Items, &copied)
		}
		out.Categories = append(out.Categories, cc)
	}
	return out
}

// FindCategory returns the category with the given id, or nil.
func (b *Budget) FindCategory(id string) *Category {
	for _, c := range b.Categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindItem locates an item anywhere in the budget. It returns the owning
// category, the item's index within it, and the item, or (nil, -1, nil).
func (b *Budget) FindItem(itemID string) (*Category, int, *LineItem) {
	for _, c := range b.Categories {
		for i, it := range c.Items {
			if it.ID == itemID {
				return c, i, it
			}
		}
	}
	return nil, -1, nil
}

// ItemIDs returns every item identifier in display order.
func (b *Budget) ItemIDs() []string {
	var ids []string
	for _, c := range b.Categories {
		for _, it := range c.Items {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// ItemCount returns the number of items across all categories.
func (b *Budget) ItemCount() int {
	n := 0
	for _, c := range b.Categories {
		n += len(c.Items)
	}
	return n
}

// ActiveItemCount returns the number of items with the active flag set.
func (b *Budget) ActiveItemCount() int {
	n := 0
	for _, c := range b.Categories {
		for _, it := range c.Items {
			if it.Active {
				n++
			}
		}
	}
	return n
}

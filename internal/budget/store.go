package budget

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lucianotheforce/quotedesk/internal/domain"
)

// Field names a patchable attribute of a budget, category or line item.
type Field string

const (
	FieldTitle           Field = "title"
	FieldName            Field = "name"
	FieldDescription     Field = "description"
	FieldLongDescription Field = "long_description"
	FieldNotes           Field = "notes"
	FieldActive          Field = "active"
	FieldQuantity        Field = "quantity"
	FieldDays            Field = "days"
	FieldFrequency       Field = "frequency"
	FieldUnitPriceCents  Field = "unit_price_cents"
	FieldSupplier        Field = "supplier"
	FieldInvoiceRef      Field = "invoice_ref"
	FieldBilling         Field = "billing"
)

// FieldPatch is a partial update: one or a few fields with their new values.
// Unknown fields and wrongly-typed values are rejected with ErrInvalidField.
// No cross-field validation happens here; numeric guards are the caller's job.
type FieldPatch map[Field]any

// Store owns the in-memory budget tree and is the only mutation path.
// Every operation leaves the tree fully consistent: items always belong to
// exactly one category, identifiers are never reassigned, and a move either
// fully relocates the item or changes nothing.
type Store struct {
	budget *domain.Budget
}

// NewStore wraps an existing budget. A nil budget starts empty.
func NewStore(b *domain.Budget) *Store {
	if b == nil {
		b = &domain.Budget{}
	}
	return &Store{budget: b}
}

// Budget returns the current budget snapshot.
func (s *Store) Budget() *domain.Budget {
	return s.budget
}

// Replace swaps the whole budget, e.g. after a load or reset.
func (s *Store) Replace(b *domain.Budget) {
	if b == nil {
		b = &domain.Budget{}
	}
	s.budget = b
}

// AddCategory appends a new category with a fresh identifier.
func (s *Store) AddCategory(name, description string) *domain.Category {
	c := &domain.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
	}
	s.budget.Categories = append(s.budget.Categories, c)
	return c
}

// DeleteCategory removes a category and all its items. Unknown ids are a
// silent no-op so deletes stay idempotent.
func (s *Store) DeleteCategory(id string) {
	for i, c := range s.budget.Categories {
		if c.ID == id {
			s.budget.Categories = append(s.budget.Categories[:i], s.budget.Categories[i+1:]...)
			return
		}
	}
}

// AddItem appends a new item with placeholder defaults to the category.
func (s *Store) AddItem(categoryID string) (*domain.LineItem, error) {
	c := s.budget.FindCategory(categoryID)
	if c == nil {
		return nil, fmt.Errorf("adding item: %w", ErrCategoryNotFound)
	}
	it := &domain.LineItem{
		ID:          uuid.New().String(),
		Description: "Novo item",
		Active:      true,
		Quantity:    1,
		Days:        1,
		Frequency:   1,
		Billing:     domain.BillingDirectToClient,
	}
	c.Items = append(c.Items, it)
	return it, nil
}

// DeleteItem removes exactly one item. Unknown category or item ids are a
// silent no-op.
func (s *Store) DeleteItem(categoryID, itemID string) {
	c := s.budget.FindCategory(categoryID)
	if c == nil {
		return
	}
	for i, it := range c.Items {
		if it.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateItem applies a field patch to one item. The identifier can never be
// patched. The patch is validated in full before any field is written, so a
// rejected patch leaves the item untouched.
func (s *Store) UpdateItem(categoryID, itemID string, patch FieldPatch) error {
	c := s.budget.FindCategory(categoryID)
	if c == nil {
		return fmt.Errorf("updating item: %w", ErrCategoryNotFound)
	}
	var item *domain.LineItem
	for _, it := range c.Items {
		if it.ID == itemID {
			item = it
			break
		}
	}
	if item == nil {
		return fmt.Errorf("updating item: %w", ErrItemNotFound)
	}

	for f, v := range patch {
		if err := checkItemField(f, v); err != nil {
			return err
		}
	}
	for f, v := range patch {
		applyItemField(item, f, v)
	}
	return nil
}

// UpdateCategory applies a field patch scoped to name and description.
func (s *Store) UpdateCategory(categoryID string, patch FieldPatch) error {
	c := s.budget.FindCategory(categoryID)
	if c == nil {
		return fmt.Errorf("updating category: %w", ErrCategoryNotFound)
	}
	for f, v := range patch {
		switch f {
		case FieldName, FieldDescription:
			if _, ok := v.(string); !ok {
				return fmt.Errorf("%w: %s wants a string", ErrInvalidField, f)
			}
		default:
			return fmt.Errorf("%w: %s", ErrInvalidField, f)
		}
	}
	for f, v := range patch {
		switch f {
		case FieldName:
			c.Name = v.(string)
		case FieldDescription:
			c.Description = v.(string)
		}
	}
	return nil
}

// UpdateMeta applies a field patch scoped to the budget's own title,
// description and notes.
func (s *Store) UpdateMeta(patch FieldPatch) error {
	for f, v := range patch {
		switch f {
		case FieldTitle, FieldDescription, FieldNotes:
			if _, ok := v.(string); !ok {
				return fmt.Errorf("%w: %s wants a string", ErrInvalidField, f)
			}
		default:
			return fmt.Errorf("%w: %s", ErrInvalidField, f)
		}
	}
	for f, v := range patch {
		switch f {
		case FieldTitle:
			s.budget.Title = v.(string)
		case FieldDescription:
			s.budget.Description = v.(string)
		case FieldNotes:
			s.budget.Notes = v.(string)
		}
	}
	return nil
}

// MoveItem relocates an item to targetIndex within the target category.
// The index is interpreted against the sequence as it stands after the item
// has left its source category: "insert before the item currently occupying
// that slot". Out-of-range indexes clamp to the ends. The target category is
// resolved before anything is removed, so a failed move changes nothing.
func (s *Store) MoveItem(itemID, targetCategoryID string, targetIndex int) error {
	target := s.budget.FindCategory(targetCategoryID)
	if target == nil {
		return fmt.Errorf("moving item: %w", ErrCategoryNotFound)
	}
	source, idx, item := s.budget.FindItem(itemID)
	if item == nil {
		return fmt.Errorf("moving item: %w", ErrItemNotFound)
	}

	source.Items = append(source.Items[:idx], source.Items[idx+1:]...)

	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(target.Items) {
		targetIndex = len(target.Items)
	}
	target.Items = append(target.Items, nil)
	copy(target.Items[targetIndex+1:], target.Items[targetIndex:])
	target.Items[targetIndex] = item
	return nil
}

func checkItemField(f Field, v any) error {
	switch f {
	case FieldDescription, FieldLongDescription, FieldNotes, FieldSupplier, FieldInvoiceRef:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%w: %s wants a string", ErrInvalidField, f)
		}
	case FieldActive:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("%w: %s wants a bool", ErrInvalidField, f)
		}
	case FieldQuantity, FieldDays, FieldFrequency:
		if _, ok := v.(int); !ok {
			return fmt.Errorf("%w: %s wants an int", ErrInvalidField, f)
		}
	case FieldUnitPriceCents:
		if _, ok := v.(int64); !ok {
			return fmt.Errorf("%w: %s wants an int64", ErrInvalidField, f)
		}
	case FieldBilling:
		b, ok := v.(domain.BillingType)
		if !ok {
			return fmt.Errorf("%w: %s wants a billing type", ErrInvalidField, f)
		}
		if !domain.IsValidBillingType(b) {
			return fmt.Errorf("%w: unknown billing type %q", ErrInvalidField, b)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidField, f)
	}
	return nil
}

func applyItemField(it *domain.LineItem, f Field, v any) {
	switch f {
	case FieldDescription:
		it.Description = v.(string)
	case FieldLongDescription:
		it.LongDescription = v.(string)
	case FieldNotes:
		it.Notes = v.(string)
	case FieldSupplier:
		it.Supplier = v.(string)
	case FieldInvoiceRef:
		it.InvoiceRef = v.(string)
	case FieldActive:
		it.Active = v.(bool)
	case FieldQuantity:
		it.Quantity = v.(int)
	case FieldDays:
		it.Days = v.(int)
	case FieldFrequency:
		it.Frequency = v.(int)
	case FieldUnitPriceCents:
		it.UnitPriceCents = v.(int64)
	case FieldBilling:
		it.Billing = v.(domain.BillingType)
	}
}

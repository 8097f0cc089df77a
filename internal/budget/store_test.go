package budget

import (
	"testing"

	"github.com/lucianotheforce/quotedesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *domain.Category) {
	t.Helper()
	s := NewStore(&domain.Budget{Title: "Proposta"})
	c := s.AddCategory("Produção", "")
	return s, c
}

func TestAddCategory_AppendsWithFreshID(t *testing.T) {
	s := NewStore(nil)
	a := s.AddCategory("Produção", "equipe e diárias")
	b := s.AddCategory("Pós-produção", "")

	require.Len(t, s.Budget().Categories, 2)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "Produção", s.Budget().Categories[0].Name)
	assert.Equal(t, "Pós-produção", s.Budget().Categories[1].Name)
}

func TestDeleteCategory_CascadesAndIsIdempotent(t *testing.T) {
	s, c := newTestStore(t)
	_, err := s.AddItem(c.ID)
	require.NoError(t, err)

	s.DeleteCategory(c.ID)
	assert.Empty(t, s.Budget().Categories)

	// Second delete of the same id is a silent no-op.
	s.DeleteCategory(c.ID)
	s.DeleteCategory("unknown")
	assert.Empty(t, s.Budget().Categories)
}

func TestAddItem_Defaults(t *testing.T) {
	s, c := newTestStore(t)
	it, err := s.AddItem(c.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, it.ID)
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, 1, it.Days)
	assert.Equal(t, 1, it.Frequency)
	assert.Equal(t, int64(0), it.UnitPriceCents)
	assert.Equal(t, domain.BillingDirectToClient, it.Billing)
	assert.True(t, it.Active)
	require.Len(t, c.Items, 1)
}

func TestAddItem_UnknownCategory(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.AddItem("missing")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteItem_NoopWhenMissing(t *testing.T) {
	s, c := newTestStore(t)
	it, err := s.AddItem(c.ID)
	require.NoError(t, err)

	s.DeleteItem(c.ID, "missing")
	require.Len(t, c.Items, 1)

	s.DeleteItem(c.ID, it.ID)
	assert.Empty(t, c.Items)

	s.DeleteItem(c.ID, it.ID)
	s.DeleteItem("missing", it.ID)
	assert.Empty(t, c.Items)
}

func TestUpdateItem_PatchesFields(t *testing.T) {
	s, c := newTestStore(t)
	it, err := s.AddItem(c.ID)
	require.NoError(t, err)
	originalID := it.ID

	err = s.UpdateItem(c.ID, it.ID, FieldPatch{
		FieldDescription:    "Direção de fotografia",
		FieldQuantity:       2,
		FieldDays:           3,
		FieldUnitPriceCents: int64(150000),
		FieldBilling:        domain.BillingInternalTeam,
	})
	require.NoError(t, err)

	assert.Equal(t, originalID, it.ID)
	assert.Equal(t, "Direção de fotografia", it.Description)
	assert.Equal(t, 2, it.Quantity)
	assert.Equal(t, 3, it.Days)
	assert.Equal(t, int64(150000), it.UnitPriceCents)
	assert.Equal(t, domain.BillingInternalTeam, it.Billing)
	// Untouched fields keep their defaults.
	assert.Equal(t, 1, it.Frequency)
	assert.True(t, it.Active)
}

func TestUpdateItem_RejectsUnknownField(t *testing.T) {
	s, c := newTestStore(t)
	it, err := s.AddItem(c.ID)
	require.NoError(t, err)

	err = s.UpdateItem(c.ID, it.ID, FieldPatch{Field("color"): "blue"})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestUpdateItem_RejectsWrongType_WithoutPartialApply(t *testing.T) {
	s, c := newTestStore(t)
	it, err := s.AddItem(c.ID)
	require.NoError(t, err)

	err = s.UpdateItem(c.ID, it.ID, FieldPatch{
		FieldDescription: "Locação",
		FieldQuantity:    "two",
	})
	assert.ErrorIs(t, err, ErrInvalidField)
	// The whole patch was rejected, including the valid field.
	assert.Equal(t, "Novo item", it.Description)
	assert.Equal(t, 1, it.Quantity)
}

func TestUpdateItem_RejectsUnknownBillingType(t *testing.T) {
	s, c := newTestStore(t)
	it, err := s.AddItem(c.ID)
	require.NoError(t, err)

	err = s.UpdateItem(c.ID, it.ID, FieldPatch{FieldBilling: domain.BillingType("Cliente")})
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, domain.BillingDirectToClient, it.Billing)
}

func TestUpdateItem_NotFound(t *testing.T) {
	s, c := newTestStore(t)
	err := s.UpdateItem("missing", "x", FieldPatch{FieldNotes: "n"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	err = s.UpdateItem(c.ID, "missing", FieldPatch{FieldNotes: "n"})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateCategory_NameAndDescriptionOnly(t *testing.T) {
	s, c := newTestStore(t)

	err := s.UpdateCategory(c.ID, FieldPatch{FieldName: "Pré-produção", FieldDescription: "planejamento"})
	require.NoError(t, err)
	assert.Equal(t, "Pré-produção", c.Name)
	assert.Equal(t, "planejamento", c.Description)

	err = s.UpdateCategory(c.ID, FieldPatch{FieldQuantity: 2})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestUpdateMeta(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.UpdateMeta(FieldPatch{FieldTitle: "Proposta MASP", FieldNotes: "validade 30 dias"})
	require.NoError(t, err)
	assert.Equal(t, "Proposta MASP", s.Budget().Title)
	assert.Equal(t, "validade 30 dias", s.Budget().Notes)

	err = s.UpdateMeta(FieldPatch{FieldQuantity: 1})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func itemIDs(c *domain.Category) []string {
	ids := make([]string, len(c.Items))
	for i, it := range c.Items {
		ids[i] = it.ID
	}
	return ids
}

func TestMoveItem_WithinCategory(t *testing.T) {
	s, c := newTestStore(t)
	var ids []string
	for i := 0; i < 4; i++ {
		it, err := s.AddItem(c.ID)
		require.NoError(t, err)
		ids = append(ids, it.ID)
	}

	// Move the last item to the front.
	require.NoError(t, s.MoveItem(ids[3], c.ID, 0))
	assert.Equal(t, []string{ids[3], ids[0], ids[1], ids[2]}, itemIDs(c))

	// Relative order of the others is unchanged.
	require.NoError(t, s.MoveItem(ids[3], c.ID, 3))
	assert.Equal(t, []string{ids[0], ids[1], ids[2], ids[3]}, itemIDs(c))
}

func TestMoveItem_AcrossCategories(t *testing.T) {
	s, src := newTestStore(t)
	dst := s.AddCategory("Pós-produção", "")

	a, _ := s.AddItem(src.ID)
	b, _ := s.AddItem(src.ID)
	x, _ := s.AddItem(dst.ID)
	y, _ := s.AddItem(dst.ID)

	require.NoError(t, s.MoveItem(a.ID, dst.ID, 1))

	assert.Equal(t, []string{b.ID}, itemIDs(src))
	assert.Equal(t, []string{x.ID, a.ID, y.ID}, itemIDs(dst))
}

func TestMoveItem_ClampsIndex(t *testing.T) {
	s, src := newTestStore(t)
	dst := s.AddCategory("Extras", "")
	a, _ := s.AddItem(src.ID)
	x, _ := s.AddItem(dst.ID)

	require.NoError(t, s.MoveItem(a.ID, dst.ID, 99))
	assert.Equal(t, []string{x.ID, a.ID}, itemIDs(dst))

	require.NoError(t, s.MoveItem(a.ID, dst.ID, -5))
	assert.Equal(t, []string{a.ID, x.ID}, itemIDs(dst))
}

func TestMoveItem_FailuresLeaveTreeUntouched(t *testing.T) {
	s, c := newTestStore(t)
	a, _ := s.AddItem(c.ID)
	b, _ := s.AddItem(c.ID)

	err := s.MoveItem(a.ID, "missing", 0)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Equal(t, []string{a.ID, b.ID}, itemIDs(c))

	err = s.MoveItem("missing", c.ID, 0)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, []string{a.ID, b.ID}, itemIDs(c))
}

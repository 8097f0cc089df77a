package intelligence

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/lucianotheforce/quotedesk/internal/budget"
	"github.com/lucianotheforce/quotedesk/internal/domain"
	"github.com/lucianotheforce/quotedesk/internal/llm"
)

// Persister is the write-through collaborator called after a merge.
type Persister interface {
	Save(ctx context.Context, b *domain.Budget) error
}

// BulkEditService delegates bulk edits of budget line items to an external
// text generator and merges the response back without ever trusting it.
// The generator's output is adversarial input: every field is validated
// against the original item's type and domain, and anything invalid falls
// back to the original value rather than aborting the batch.
type BulkEditService interface {
	// Edit sends the targeted items and the instruction to the generator,
	// merges the validated response into the store, and triggers a save.
	Edit(ctx context.Context, itemIDs []string, instruction string) (*BulkEditOutcome, error)

	// Processing reports whether a bulk edit is currently in flight.
	Processing() bool

	// Available reports whether the generator endpoint is reachable.
	Available(ctx context.Context) bool
}

type bulkEditService struct {
	client     llm.Client
	store      *budget.Store
	persister  Persister
	processing atomic.Bool
}

// NewBulkEditService creates a BulkEditService backed by a generator client.
func NewBulkEditService(client llm.Client, store *budget.Store, persister Persister) BulkEditService {
	return &bulkEditService{
		client:    client,
		store:     store,
		persister: persister,
	}
}

func (s *bulkEditService) Processing() bool {
	return s.processing.Load()
}

func (s *bulkEditService) Available(ctx context.Context) bool {
	return s.client.Available(ctx)
}

func (s *bulkEditService) Edit(ctx context.Context, itemIDs []string, instruction string) (*BulkEditOutcome, error) {
	if strings.TrimSpace(instruction) == "" {
		return nil, ErrEmptyInstruction
	}

	projections := s.project(itemIDs)
	if len(projections) == 0 {
		return nil, ErrEmptyTarget
	}

	// One edit at a time; the flag resets on every outcome.
	if !s.processing.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.processing.Store(false)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskBulkEdit,
		SystemPrompt: buildBulkEditSystemPrompt(),
		UserPrompt:   buildBulkEditUserPrompt(projections, instruction),
	})
	if err != nil {
		// Transport failure: the budget has not been touched.
		return nil, fmt.Errorf("ai edit failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[editResponse](resp.Text, nil)
	if err != nil {
		if errors.Is(err, llm.ErrInvalidOutput) {
			// Malformed payload merges like an empty one: every item keeps
			// its original values.
			return &BulkEditOutcome{TargetedItems: len(projections), NoChanges: true}, nil
		}
		return nil, err
	}
	if !parsed.Success {
		msg := parsed.Error
		if msg == "" {
			msg = "no reason given"
		}
		return nil, fmt.Errorf("%w: %s", ErrGeneratorRefused, msg)
	}

	outcome := &BulkEditOutcome{TargetedItems: len(projections)}
	for _, p := range projections {
		if s.mergeOne(p, findEntry(parsed.EditedItems, p.ID)) {
			outcome.ChangedItems++
		}
	}

	if outcome.ChangedItems == 0 {
		outcome.NoChanges = true
		return outcome, nil
	}

	// Optimistic write-through: a failed save is reported but never rolls
	// back the in-memory merge.
	if err := s.persister.Save(ctx, s.store.Budget()); err != nil {
		outcome.SaveErr = err
	}
	return outcome, nil
}

// project serializes the targeted items, silently dropping ids that no
// longer exist in the budget.
func (s *bulkEditService) project(itemIDs []string) []ItemProjection {
	b := s.store.Budget()
	var out []ItemProjection
	for _, id := range itemIDs {
		_, _, it := b.FindItem(id)
		if it == nil {
			continue
		}
		out = append(out, ItemProjection{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    float64(it.Quantity),
			UnitValue:   domain.NumberFromCents(it.UnitPriceCents),
			BillingType: string(it.Billing),
		})
	}
	return out
}

// findEntry returns the first response entry whose id matches, or nil.
// Entries with a missing or non-string id can never match anything.
func findEntry(entries []map[string]any, id string) map[string]any {
	for _, e := range entries {
		if got, ok := e["id"].(string); ok && got == id {
			return e
		}
	}
	return nil
}

// mergeOne validates the response entry field by field against the original
// item and applies whatever survives. A nil entry keeps the item unchanged.
// The response's id is always discarded in favor of the original; the
// generator can never rename or merge identifiers. Returns true if any
// field actually changed.
func (s *bulkEditService) mergeOne(original ItemProjection, entry map[string]any) bool {
	if entry == nil {
		return false
	}
	cat, _, item := s.store.Budget().FindItem(original.ID)
	if item == nil {
		// Deleted while the request was in flight.
		return false
	}

	patch := budget.FieldPatch{}

	if v, ok := entry["description"].(string); ok && v != item.Description {
		patch[budget.FieldDescription] = v
	}
	if v, ok := entry["quantity"].(float64); ok && v > 0 {
		if qty := int(math.Round(v)); qty > 0 && qty != item.Quantity {
			patch[budget.FieldQuantity] = qty
		}
	}
	if v, ok := entry["unitValue"].(float64); ok && v > 0 {
		// Sub-cent values round to zero centavos; the price must stay
		// strictly positive after rounding, same as the quantity.
		if cents := domain.CentsFromNumber(v); cents > 0 && cents != item.UnitPriceCents {
			patch[budget.FieldUnitPriceCents] = cents
		}
	}
	if v, ok := entry["billingType"].(string); ok {
		if bt := domain.BillingType(v); domain.IsValidBillingType(bt) && bt != item.Billing {
			patch[budget.FieldBilling] = bt
		}
	}

	if len(patch) == 0 {
		return false
	}
	return s.store.UpdateItem(cat.ID, item.ID, patch) == nil
}

package repository

import (
	"context"

	"github.com/lucianotheforce/quotedesk/internal/domain"
)

// BudgetRepo persists full budget snapshots. The budget is a single-editor
// document: Save replaces the whole stored tree, and Load reconstructs it
// losslessly, category and item order included.
type BudgetRepo interface {
	// Load returns the stored budget, or the factory default when nothing
	// has been saved yet.
	Load(ctx context.Context) (*domain.Budget, error)

	// Save replaces the stored snapshot with the given budget.
	Save(ctx context.Context, b *domain.Budget) error

	// Reset discards the stored snapshot and restores the factory default,
	// returning the fresh budget.
	Reset(ctx context.Context) (*domain.Budget, error)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lucianotheforce/quotedesk/internal/budget"
	"github.com/lucianotheforce/quotedesk/internal/db"
	"github.com/lucianotheforce/quotedesk/internal/domain"
)

// budgetRowID is the key of the single stored budget document.
const budgetRowID = "default"

// SQLiteBudgetRepo implements BudgetRepo using a SQLite database.
type SQLiteBudgetRepo struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteBudgetRepo creates a new SQLiteBudgetRepo.
func NewSQLiteBudgetRepo(database *sql.DB, uow db.UnitOfWork) *SQLiteBudgetRepo {
	return &SQLiteBudgetRepo{db: database, uow: uow}
}

func (r *SQLiteBudgetRepo) Load(ctx context.Context) (*domain.Budget, error) {
	b := &domain.Budget{}
	row := r.db.QueryRowContext(ctx,
		`SELECT title, description, notes FROM budgets WHERE id = ?`, budgetRowID)
	if err := row.Scan(&b.Title, &b.Description, &b.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return budget.DefaultBudget(), nil
		}
		return nil, fmt.Errorf("loading budget: %w", err)
	}

	catRows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM categories WHERE budget_id = ? ORDER BY position`, budgetRowID)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	defer catRows.Close()

	for catRows.Next() {
		c := &domain.Category{}
		if err := catRows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		b.Categories = append(b.Categories, c)
	}
	if err := catRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	for _, c := range b.Categories {
		items, err := r.loadItems(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		c.Items = items
	}
	return b, nil
}

func (r *SQLiteBudgetRepo) loadItems(ctx context.Context, categoryID string) ([]*domain.LineItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, long_description, notes, active, quantity, days, frequency,
			unit_price_cents, supplier, invoice_ref, billing
		FROM items WHERE category_id = ? ORDER BY position`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	defer rows.Close()

	var items []*domain.LineItem
	for rows.Next() {
		it := &domain.LineItem{}
		var active int
		var billing string
		if err := rows.Scan(
			&it.ID, &it.Description, &it.LongDescription, &it.Notes, &active,
			&it.Quantity, &it.Days, &it.Frequency,
			&it.UnitPriceCents, &it.Supplier, &it.InvoiceRef, &billing,
		); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		it.Active = active != 0
		it.Billing = domain.BillingType(billing)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

func (r *SQLiteBudgetRepo) Save(ctx context.Context, b *domain.Budget) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return writeSnapshot(ctx, tx, b)
	})
}

func (r *SQLiteBudgetRepo) Reset(ctx context.Context) (*domain.Budget, error) {
	fresh := budget.DefaultBudget()
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return writeSnapshot(ctx, tx, fresh)
	})
	if err != nil {
		return nil, err
	}
	return fresh, nil
}

// writeSnapshot replaces the stored document inside a transaction. Deleting
// the budget row cascades to categories and items.
func writeSnapshot(ctx context.Context, tx db.DBTX, b *domain.Budget) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, budgetRowID); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := tx.ExecContext(ctx,
		`INSERT INTO budgets (id, title, description, notes, updated_at) VALUES (?, ?, ?, ?, ?)`,
		budgetRowID, b.Title, b.Description, b.Notes, now)
	if err != nil {
		return fmt.Errorf("inserting budget: %w", err)
	}

	for ci, c := range b.Categories {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, budget_id, name, description, position) VALUES (?, ?, ?, ?, ?)`,
			c.ID, budgetRowID, c.Name, c.Description, ci)
		if err != nil {
			return fmt.Errorf("inserting category %s: %w", c.ID, err)
		}

		for ii, it := range c.Items {
			active := 0
			if it.Active {
				active = 1
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO items (id, category_id, position, description, long_description, notes,
					active, quantity, days, frequency, unit_price_cents, supplier, invoice_ref, billing)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				it.ID, c.ID, ii, it.Description, it.LongDescription, it.Notes,
				active, it.Quantity, it.Days, it.Frequency,
				it.UnitPriceCents, it.Supplier, it.InvoiceRef, string(it.Billing))
			if err != nil {
				return fmt.Errorf("inserting item %s: %w", it.ID, err)
			}
		}
	}
	return nil
}

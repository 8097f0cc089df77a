package budget

import (
	"github.com/google/uuid"
	"github.com/lucianotheforce/quotedesk/internal/domain"
)

// DefaultBudget returns the factory-default budget used on first run and
// after a reset: an empty proposal with one starter category and item.
func DefaultBudget() *domain.Budget {
	return &domain.Budget{
		Title:       "Nova Proposta",
		Description: "Orçamento comercial",
		Categories: []*domain.Category{
			{
				ID:   uuid.New().String(),
				Name: "Produção",
				Items: []*domain.LineItem{
					{
						ID:          uuid.New().String(),
						Description: "Novo item",
						Active:      true,
						Quantity:    1,
						Days:        1,
						Frequency:   1,
						Billing:     domain.BillingDirectToClient,
					},
				},
			},
		},
	}
}

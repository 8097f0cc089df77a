package intelligence

import (
	"encoding/json"
	"strings"

	"github.com/lucianotheforce/quotedesk/internal/domain"
)

func buildBulkEditSystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are a budget assistant for commercial production quotes. ")
	b.WriteString("You receive a JSON array of budget line items and an instruction. ")
	b.WriteString("Apply the instruction to the items and answer with JSON only, no prose, in this exact shape:\n\n")
	b.WriteString(`{"success": true, "editedItems": [{"id": "...", "description": "...", "quantity": 1, "unitValue": 100.0, "billingType": "..."}]}`)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- Keep every id exactly as given. Never invent, merge or drop ids.\n")
	b.WriteString("- quantity and unitValue must be numbers greater than zero.\n")
	b.WriteString("- billingType must be one of: ")
	for i, bt := range domain.AllBillingTypes() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(`"` + string(bt) + `"`)
	}
	b.WriteString(".\n")
	b.WriteString("- Only include items you actually changed.\n")
	b.WriteString(`- If the instruction cannot be applied, answer {"success": false, "error": "reason"}.`)
	return b.String()
}

func buildBulkEditUserPrompt(items []ItemProjection, instruction string) string {
	data, _ := json.Marshal(items)

	var b strings.Builder
	b.WriteString("## Items\n")
	b.Write(data)
	b.WriteString("\n\n## Instruction\n")
	b.WriteString(instruction)
	return b.String()
}

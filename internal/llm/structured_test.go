package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type editedItemPayload struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitValue   float64 `json:"unitValue"`
	BillingType string  `json:"billingType"`
}

type editPayload struct {
	Success     bool                `json:"success"`
	EditedItems []editedItemPayload `json:"editedItems"`
	Error       string              `json:"error"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	raw := `{"success": true, "editedItems": [{"id": "i1", "description": "Drone", "quantity": 2, "unitValue": 150.5, "billingType": "Direto ao Cliente"}]}`

	got, err := ExtractJSON[editPayload](raw, nil)
	require.NoError(t, err)
	assert.True(t, got.Success)
	require.Len(t, got.EditedItems, 1)
	assert.Equal(t, "i1", got.EditedItems[0].ID)
	assert.Equal(t, 150.5, got.EditedItems[0].UnitValue)
}

func TestExtractJSON_MarkdownFences(t *testing.T) {
	raw := "Here are the edited items:\n```json\n{\"success\": true, \"editedItems\": []}\n```\nLet me know if you need more."

	got, err := ExtractJSON[editPayload](raw, nil)
	require.NoError(t, err)
	assert.True(t, got.Success)
}

func TestExtractJSON_BareArray(t *testing.T) {
	raw := `[{"id": "i1", "quantity": 3}]`

	got, err := ExtractJSON[[]editedItemPayload](raw, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, float64(3), got[0].Quantity)
}

func TestExtractJSON_LeadingProse(t *testing.T) {
	raw := `Sure! The updated budget is {"success": true, "editedItems": []} as requested.`

	got, err := ExtractJSON[editPayload](raw, nil)
	require.NoError(t, err)
	assert.True(t, got.Success)
}

func TestExtractJSON_CommentsStripped(t *testing.T) {
	raw := `{
		"success": true, // edited ok
		"editedItems": [] /* nothing to do */
	}`

	got, err := ExtractJSON[editPayload](raw, nil)
	require.NoError(t, err)
	assert.True(t, got.Success)
}

func TestExtractJSON_LeadingDecimalRepaired(t *testing.T) {
	raw := `{"success": true, "editedItems": [{"id": "i1", "unitValue": .5}]}`

	got, err := ExtractJSON[editPayload](raw, nil)
	require.NoError(t, err)
	require.Len(t, got.EditedItems, 1)
	assert.Equal(t, 0.5, got.EditedItems[0].UnitValue)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[editPayload]("I could not edit the items, sorry.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, err := ExtractJSON[editPayload](`{"success": true, "editedItems": [`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	raw := `{"success": false, "error": "model refused"}`

	_, err := ExtractJSON[editPayload](raw, func(p editPayload) error {
		if !p.Success {
			return assert.AnError
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"success": true, "editedItems": [{"id": "i1", "description": "palco {principal}", "quantity": 1}]}`

	got, err := ExtractJSON[editPayload](raw, nil)
	require.NoError(t, err)
	require.Len(t, got.EditedItems, 1)
	assert.Equal(t, "palco {principal}", got.EditedItems[0].Description)
}

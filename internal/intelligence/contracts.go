package intelligence

import "errors"

// ItemProjection is the minimal item view exchanged with the generator.
// Only these fields may be edited by an AI merge; everything else on a line
// item is out of the generator's reach.
type ItemProjection struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitValue   float64 `json:"unitValue"`
	BillingType string  `json:"billingType"`
}

// editResponse is the declared generator response shape. EditedItems entries
// are kept loosely typed: the payload is untrusted and every field is
// validated individually before anything touches the budget.
type editResponse struct {
	Success     bool             `json:"success"`
	EditedItems []map[string]any `json:"editedItems"`
	Error       string           `json:"error"`
}

// BulkEditOutcome reports what a completed bulk edit actually did.
type BulkEditOutcome struct {
	// TargetedItems is how many items were sent to the generator.
	TargetedItems int

	// ChangedItems is how many items had at least one field changed by the
	// merge. Zero with NoChanges set means the generator returned nothing
	// usable and every item kept its original values.
	ChangedItems int

	// NoChanges distinguishes "ran fine, nothing changed" from success.
	NoChanges bool

	// SaveErr carries a failed write-through. The in-memory merge stands
	// regardless; there is no rollback.
	SaveErr error
}

var (
	// ErrEmptyTarget indicates no existing items were targeted.
	ErrEmptyTarget = errors.New("no items selected for ai edit")

	// ErrEmptyInstruction indicates the instruction was empty or whitespace.
	ErrEmptyInstruction = errors.New("instruction must not be empty")

	// ErrBusy indicates a bulk edit is already in flight. Dispatch is not
	// re-entrant; the caller should wait for the current call to resolve.
	ErrBusy = errors.New("an ai edit is already in progress")

	// ErrGeneratorRefused indicates the generator answered with success=false.
	ErrGeneratorRefused = errors.New("generator refused the edit")
)

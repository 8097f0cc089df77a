package budget

import "errors"

var (
	// ErrCategoryNotFound indicates the target category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrItemNotFound indicates the target item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidField indicates a field patch referenced an unknown field
	// or carried a value of the wrong type.
	ErrInvalidField = errors.New("invalid field")
)

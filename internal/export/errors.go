package export

import "errors"

var (
	// ErrInvalidType indicates the content type is neither builtin nor a registered custom type.
	ErrInvalidType = errors.New("invalid content type")

	// ErrInvalidDateRange indicates start_date is later than end_date.
	ErrInvalidDateRange = errors.New("start date is later than end date")

	// ErrDuplicateType indicates a custom type collides with an existing one.
	ErrDuplicateType = errors.New("content type already registered")
)

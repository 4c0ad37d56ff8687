package analysis

import "errors"

var (
	ErrNoDocuments         = errors.New("please upload at least one document")
	ErrTooFewDocuments     = errors.New("please upload at least two documents to compare")
	ErrInsufficientContent = errors.New("at least two documents must have content to be analyzed")
)

// IsValidation reports whether err means the caller supplied unusable input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoDocuments) ||
		errors.Is(err, ErrTooFewDocuments) ||
		errors.Is(err, ErrInsufficientContent)
}

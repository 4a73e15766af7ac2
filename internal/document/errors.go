package document

import "fmt"

// ErrorType classifies a file-level normalization failure.
type ErrorType string

// Normalization error types. These are terminal for the file that raised
// them; none of them trigger a retry.
const (
	ErrEmptyFile       ErrorType = "EMPTY_FILE"
	ErrFileTooLarge    ErrorType = "FILE_TOO_LARGE"
	ErrUnsupportedFile ErrorType = "UNSUPPORTED_FILE"
	ErrCorruptedFile   ErrorType = "CORRUPTED_FILE"
	ErrProcessing      ErrorType = "PROCESSING_ERROR"
)

// ProcessingError is the typed failure value for a single document. It
// carries the offending file name so batch callers can attribute it.
type ProcessingError struct {
	Type     ErrorType
	Message  string
	FileName string
	Cause    error
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.Type, e.Message, e.FileName, e.Cause)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.FileName)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

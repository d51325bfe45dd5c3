package layout

import "fmt"

// ParseError describes a malformed layout definition.
type ParseError struct {
	// Path is the file the definition came from.
	Path string

	// Message describes what is wrong.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("layout %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("layout %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

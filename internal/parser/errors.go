package parser

import "fmt"

// EmptyInputError reports that the raw resume text was empty or blank after
// trimming. It is the only error the engine returns; malformed or
// unusually-formatted text degrades to empty lists instead of failing.
type EmptyInputError struct {
	Message string
}

func (e *EmptyInputError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("empty input: %s", e.Message)
	}
	return "empty input"
}

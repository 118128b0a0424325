package shell

import "fmt"

// UsageError reports bad command input. The shell prints its message as is.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Usagef creates a UsageError
func Usagef(format string, args ...interface{}) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

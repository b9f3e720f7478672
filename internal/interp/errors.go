package interp

import (
	"errors"
	"fmt"
)

// ErrExit is returned by Dispatch when the user asks to leave the shell.
var ErrExit = errors.New("exit")

// InputError is a user-input mistake: an unknown identifier, a naming
// conflict, a malformed command. The shell prints it and re-prompts.
type InputError struct {
	msg string
}

func (e *InputError) Error() string {
	return e.msg
}

func inputErrorf(format string, args ...interface{}) *InputError {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// IsInputError reports whether err is a user-input error.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

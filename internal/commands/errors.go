package commands

import (
	"errors"
	"fmt"
	"io"

	"todos/internal/exitcode"
	"todos/internal/task"
)

// reportError writes err to errOut and picks the exit code for it.
// Validation and not-found failures are the user's to fix; everything else
// (transport failures included) is a backend error.
func reportError(errOut io.Writer, err error) int {
	var verr *task.ValidationError
	var nferr *task.NotFoundError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(errOut, "error: %s\n", verr.Reason)
		return exitcode.UserError
	case errors.As(err, &nferr):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

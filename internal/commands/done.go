package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/config"
	"todos/internal/controller"
	"todos/internal/exitcode"
	"todos/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: it toggles the completed flag of the
// task at the given display number, so running it twice restores the task.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string   { return "Toggle a task's completed flag" }
func (c *DoneCmd) Usage() string      { return "todos done <n>" }
func (c *DoneCmd) NeedsBackend() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskNumber(args)
	if err != nil {
		if err == ErrTaskNumberRequired {
			fmt.Fprintln(errOut, "error: task number required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	ctrl := controller.New(svc)
	if err := ctrl.Refresh(ctx); err != nil {
		return reportError(errOut, err)
	}

	tasks := ctrl.Tasks()
	if num < 1 || num > len(tasks) {
		fmt.Fprintf(errOut, "error: task number out of range: %d\n", num)
		return exitcode.UserError
	}

	if _, _, err := ctrl.Toggle(ctx, tasks[num-1].ID); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

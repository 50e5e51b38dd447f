package walkthrough

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// RunCommand runs a command line (split on whitespace) and returns its stdout.
func RunCommand(ctx context.Context, line string) ([]byte, error) {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}
	return exec.CommandContext(ctx, argv[0], argv[1:]...).Output()
}

func process(ctx context.Context, env *Env) error {
	out, err := RunCommand(ctx, env.UptimeCommand)
	if err != nil {
		fmt.Fprintf(env.Out, "there was an error executing the command : %v\n", err)
		env.Log.WarnObj("external command failed", "command_error", map[string]any{
			"command": env.UptimeCommand,
			"error":   err.Error(),
		})
		return nil
	}
	fmt.Fprintln(env.Out, string(out))
	return nil
}

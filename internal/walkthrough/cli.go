package walkthrough

import (
	"context"
	"fmt"
)

func cliArgs(_ context.Context, env *Env) error {
	heading(env.Out, "CLI")
	for _, arg := range env.Args {
		fmt.Fprintln(env.Out, arg)
	}
	return nil
}

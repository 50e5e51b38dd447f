package walkthrough

import (
	"context"
	"fmt"
	"io"
)

// Unexported identifiers stay private to the package; exported ones are the
// package's API. These three mirror a module with a nested submodule.

func printAnotherMessage(w io.Writer) {
	fmt.Fprintln(w, "this is another message !")
}

// PrintMessage is the public entry point; it calls a private helper.
func PrintMessage(w io.Writer) {
	fmt.Fprintln(w, "this is an example of a function inside a module !")
	printAnotherMessage(w)
}

// PrintTestMessage stands in for the nested submodule.
func PrintTestMessage(w io.Writer) {
	fmt.Fprintln(w, "this is a test message !")
}

func modules(_ context.Context, env *Env) error {
	PrintMessage(env.Out)
	PrintTestMessage(env.Out)
	return nil
}

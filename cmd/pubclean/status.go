package main

import (
	"fmt"

	"github.com/fwojciec/pubtext"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	counts, err := deps.Articles.CountByState(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pubtext.ErrorMessage(err))
		return err
	}

	for _, state := range []pubtext.State{pubtext.StateComplete, pubtext.StatePartial, pubtext.StateFailed} {
		fmt.Fprintf(deps.Stdout, "%-9s %d\n", state, counts[state])
	}
	return nil
}

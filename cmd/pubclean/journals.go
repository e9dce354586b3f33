package main

import (
	"fmt"
	"text/tabwriter"
)

// Run executes the journals command.
func (c *JournalsCmd) Run(deps *Dependencies) error {
	if c.Publishers {
		for _, name := range deps.Registry.Publishers() {
			fmt.Fprintln(deps.Stdout, name)
		}
		return nil
	}

	journals := deps.Registry.Journals()
	if len(journals) == 0 {
		fmt.Fprintln(deps.Stdout, "No journals registered. Add them to the registry file.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, j := range journals {
		policy := ""
		if j.RequireAll {
			policy = "require-all"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", j.ISSN, j.Publisher.Name(), j.Name, policy)
	}
	return w.Flush()
}

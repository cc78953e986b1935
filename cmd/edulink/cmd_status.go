package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "show the resolved link state",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := resolver.State()
			if err != nil {
				return err
			}

			link := "down"
			if state.Link {
				link = "up"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 1, 2, 4, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "MODE", "LINK", "SPEED", "DUPLEX", "PAUSE")
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", resolver.Mode(), link, state.Speed, state.Duplex, state.Pause)
			w.Flush()
			return nil
		},
	}
}

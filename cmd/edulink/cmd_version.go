package main

import (
	"fmt"

	"github.com/davidkroell/edulink"
	"github.com/spf13/cobra"
)

func versionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), edulink.Version())
		},
	}

	return cmd
}

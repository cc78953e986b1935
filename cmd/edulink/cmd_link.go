package main

import (
	"github.com/davidkroell/edulink"
	"github.com/spf13/cobra"
)

func startCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "release the administrative hold and bring the link up",
		Run: func(cmd *cobra.Command, args []string) {
			resolver.Start()
		},
	}
}

func stopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "hold the link down",
		Run: func(cmd *cobra.Command, args []string) {
			resolver.Stop()
		},
	}
}

func modeCommand() *cobra.Command {
	var fixedArg string

	cmd := &cobra.Command{
		Use:   "mode [phy|fixed|sgmii|1000base-x]",
		Short: "recreate the resolver in another autoneg mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return ErrTooFewArguments
			}
			return restartResolver(args[0], fixedArg)
		},
	}

	cmd.Flags().StringVarP(&fixedArg, "fixed", "f", "1000/full",
		"fixed-link config ('"+edulink.FixedLinkFormatString+"')")
	return cmd
}

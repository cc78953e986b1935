package main

import (
	"github.com/davidkroell/edulink"
	"github.com/spf13/cobra"
)

func macCommand() *cobra.Command {
	var (
		speed  uint32
		duplex string
		down   bool
	)

	cmd := &cobra.Command{
		Use:   "mac [--speed n] [--duplex half|full] [--down]",
		Short: "flip the simulated MAC's in-band link view",
		Run: func(cmd *cobra.Command, args []string) {
			d := edulink.DuplexFull
			if duplex == "half" {
				d = edulink.DuplexHalf
			}

			mac.SetLink(!down, edulink.Speed(speed), d)
			resolver.MACChanged()
		},
	}

	cmd.Flags().Uint32VarP(&speed, "speed", "s", 1000, "link speed in Mbps")
	cmd.Flags().StringVarP(&duplex, "duplex", "d", "full", "link duplex")
	cmd.Flags().BoolVar(&down, "down", false, "report the link as down")
	return cmd
}

package main

import (
	"github.com/davidkroell/edulink"
	"github.com/spf13/cobra"
)

func phyCommands() *cobra.Command {
	phyCmds := &cobra.Command{
		Use:   "phy",
		Short: "attach, detach or drive the simulated PHY",
	}

	attachCmd := &cobra.Command{
		Use:   "attach",
		Short: "attach a PHY to the resolver",
		Run: func(cmd *cobra.Command, args []string) {
			resolver.AttachPHY(edulink.NewCapabilitySet(
				edulink.Cap10Half, edulink.Cap10Full,
				edulink.Cap100Half, edulink.Cap100Full,
				edulink.Cap1000Full,
				edulink.CapPause, edulink.CapAsymPause,
			))
		},
	}

	detachCmd := &cobra.Command{
		Use:   "detach",
		Short: "detach the PHY from the resolver",
		Run: func(cmd *cobra.Command, args []string) {
			resolver.DetachPHY()
		},
	}

	var (
		speed  uint32
		duplex string
		pause  string
		down   bool
	)

	eventCmd := &cobra.Command{
		Use:   "event [--speed n] [--duplex half|full] [--pause p] [--down]",
		Short: "deliver a PHY link change event",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := edulink.DuplexFull
			if duplex == "half" {
				d = edulink.DuplexHalf
			}

			p := edulink.PauseNone
			switch pause {
			case "sym":
				p = edulink.PauseSym
			case "asym":
				p = edulink.PauseAsym
			case "sym+asym":
				p = edulink.PauseSym | edulink.PauseAsym
			}

			resolver.PHYEvents() <- edulink.PHYEvent{
				Speed:  edulink.Speed(speed),
				Duplex: d,
				Pause:  p,
				Link:   !down,
			}
			return nil
		},
	}

	eventCmd.Flags().Uint32VarP(&speed, "speed", "s", 1000, "negotiated speed in Mbps")
	eventCmd.Flags().StringVarP(&duplex, "duplex", "d", "full", "negotiated duplex")
	eventCmd.Flags().StringVarP(&pause, "pause", "p", "none", "negotiated pause mode")
	eventCmd.Flags().BoolVar(&down, "down", false, "report the link as down")

	phyCmds.AddCommand(attachCmd, detachCmd, eventCmd)
	return phyCmds
}

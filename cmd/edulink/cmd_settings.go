package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/davidkroell/edulink"
	"github.com/spf13/cobra"
)

func settingsCommands() *cobra.Command {
	settingsCmds := &cobra.Command{
		Use:   "settings",
		Short: "show or change the link settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolver.Settings()
			if err != nil {
				return err
			}

			autoneg := "off"
			if s.AutonegEnabled {
				autoneg = "on"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 1, 2, 4, ' ', 0)
			fmt.Fprintf(w, "supported\t%s\n", s.Supported)
			fmt.Fprintf(w, "advertising\t%s\n", s.Advertising)
			fmt.Fprintf(w, "lp-advertising\t%s\n", s.LPAdvertising)
			fmt.Fprintf(w, "speed\t%d\n", s.Speed)
			fmt.Fprintf(w, "duplex\t%s\n", s.Duplex)
			fmt.Fprintf(w, "autoneg\t%s\n", autoneg)
			w.Flush()
			return nil
		},
	}

	var (
		autoneg bool
		speed   uint32
		duplex  string
	)

	setCmd := &cobra.Command{
		Use:   "set [--autoneg] [--speed n] [--duplex half|full]",
		Short: "change the settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := resolver.Settings()
			if err != nil {
				return err
			}

			s := edulink.Settings{
				AutonegEnabled: autoneg,
				Speed:          edulink.Speed(speed),
				Duplex:         edulink.DuplexHalf,
			}
			if duplex == "full" {
				s.Duplex = edulink.DuplexFull
			}
			if autoneg {
				// advertise everything supported
				s.Advertising = current.Supported
			}

			return resolver.SetSettings(s)
		},
	}

	setCmd.Flags().BoolVar(&autoneg, "autoneg", false, "enable autonegotiation")
	setCmd.Flags().Uint32VarP(&speed, "speed", "s", 1000, "forced speed in Mbps")
	setCmd.Flags().StringVarP(&duplex, "duplex", "d", "full", "forced duplex")

	settingsCmds.AddCommand(showCmd, setCmd)
	return settingsCmds
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func miiCommands() *cobra.Command {
	miiCmds := &cobra.Command{
		Use:   "mii",
		Short: "read or write the emulated MII registers",
	}

	readCmd := &cobra.Command{
		Use:   "read reg",
		Short: "read an MII register",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return ErrTooFewArguments
			}

			reg, err := strconv.ParseUint(args[0], 0, 16)
			if err != nil {
				return err
			}

			value, err := resolver.MIIRead(uint16(reg))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "0x%02x: 0x%04x\n", reg, value)
			return nil
		},
	}

	writeCmd := &cobra.Command{
		Use:   "write reg value",
		Short: "write an MII register",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return ErrTooFewArguments
			}

			reg, err := strconv.ParseUint(args[0], 0, 16)
			if err != nil {
				return err
			}

			value, err := strconv.ParseUint(args[1], 0, 16)
			if err != nil {
				return err
			}

			return resolver.MIIWrite(uint16(reg), uint16(value))
		},
	}

	miiCmds.AddCommand(readCmd, writeCmd)
	return miiCmds
}

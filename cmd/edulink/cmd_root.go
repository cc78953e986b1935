package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	ErrTooFewArguments = errors.New("edulink: too few arguments")
	ErrUnknownMode     = errors.New("edulink: unknown autoneg mode")
	ErrUnknownLogLevel = errors.New("edulink: unknown log level")
)

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(startCommand())
	rootCmd.AddCommand(stopCommand())
	rootCmd.AddCommand(modeCommand())
	rootCmd.AddCommand(phyCommands())
	rootCmd.AddCommand(macCommand())
	rootCmd.AddCommand(statusCommand())
	rootCmd.AddCommand(settingsCommands())
	rootCmd.AddCommand(miiCommands())
	rootCmd.AddCommand(logCommand())

	return rootCmd
}

package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func logCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "log [none|debug|info|error]",
		Short: "show or configure the log level",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return ErrTooFewArguments
			}

			switch args[0] {
			case "none":
				log.Logger = log.Level(zerolog.Disabled)
			case "debug":
				log.Logger = log.Level(zerolog.DebugLevel)
			case "info":
				log.Logger = log.Level(zerolog.InfoLevel)
			case "error":
				log.Logger = log.Level(zerolog.ErrorLevel)
			default:
				return ErrUnknownLogLevel
			}
			return nil
		},
	}
}

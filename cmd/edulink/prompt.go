package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/c-bata/go-prompt"
	"github.com/davidkroell/edulink"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	resolver       *edulink.Resolver
	mac            *simMAC
	rootCtx        context.Context
	cancelResolver context.CancelFunc

	motd = `#####################################################################
###                __         ___         __                      ###
###       ___  ___/ /__ __   / (_)___  __/ /__                    ###
###      / -_)/ _  // // /  / / / _ \/  '_/                       ###
###      \__/ \_,_/ \_,_/  /_/_/_//_/_/\_\                        ###
#####################################################################`
)

func executor(in string) {
	cmd := rootCommand()
	cmd.SetArgs(strings.Split(in, " "))
	cmd.Execute()
}

func completer(doc prompt.Document) []prompt.Suggest {
	var s []prompt.Suggest

	text := doc.TextBeforeCursor()

	// top-level prompt
	s = []prompt.Suggest{
		{Text: "version", Description: "show version"},
		{Text: "help", Description: "show help"},
		{Text: "exit", Description: "exit edulink"},

		{Text: "start", Description: "bring the link up"},
		{Text: "stop", Description: "hold the link down"},
		{Text: "mode", Description: "recreate the resolver in another autoneg mode"},
		{Text: "phy", Description: "attach, detach or drive the simulated PHY"},
		{Text: "mac", Description: "flip the simulated MAC's in-band link view"},
		{Text: "status", Description: "show the resolved link state"},
		{Text: "settings", Description: "show or change the link settings"},
		{Text: "mii", Description: "read or write the emulated MII registers"},
		{Text: "log", Description: "show or configure the log level"},
	}

	if strings.HasPrefix(text, "version") ||
		strings.HasPrefix(text, "help") ||
		strings.HasPrefix(text, "exit") ||
		strings.HasPrefix(text, "start") ||
		strings.HasPrefix(text, "stop") ||
		strings.HasPrefix(text, "status") {
		s = []prompt.Suggest{}
	}

	if strings.HasPrefix(text, "mode") {
		s = []prompt.Suggest{
			{Text: "phy", Description: "PHY-managed autonegotiation"},
			{Text: "fixed", Description: "fixed link parameters"},
			{Text: "sgmii", Description: "SGMII in-band autonegotiation"},
			{Text: "1000base-x", Description: "1000base-X in-band autonegotiation"},
		}
	}

	if strings.HasPrefix(text, "phy") {
		s = []prompt.Suggest{
			{Text: "attach", Description: "attach a PHY to the resolver"},
			{Text: "detach", Description: "detach the PHY from the resolver"},
			{Text: "event", Description: "deliver a PHY link change event"},
		}

		if strings.HasPrefix(text, "phy event") {
			s = []prompt.Suggest{
				{Text: "--speed"},
				{Text: "--duplex"},
				{Text: "--pause"},
				{Text: "--down"},
			}
		}
	}

	if strings.HasPrefix(text, "settings") {
		s = []prompt.Suggest{
			{Text: "show", Description: "show the current settings"},
			{Text: "set", Description: "change the settings"},
		}

		if strings.HasPrefix(text, "settings set") {
			s = []prompt.Suggest{
				{Text: "--autoneg"},
				{Text: "--speed"},
				{Text: "--duplex"},
			}
		}
	}

	if strings.HasPrefix(text, "mii") {
		s = []prompt.Suggest{
			{Text: "read", Description: "read an MII register"},
			{Text: "write", Description: "write an MII register"},
		}
	}

	if strings.HasPrefix(text, "log") {
		s = []prompt.Suggest{
			{Text: "none", Description: "disable logging"},
			{Text: "debug", Description: "set loglevel to debug"},
			{Text: "info", Description: "set loglevel to info"},
			{Text: "error", Description: "set loglevel to error"},
		}
	}

	return prompt.FilterHasPrefix(s, doc.GetWordBeforeCursor(), true)
}

func exitChecker(in string, breakline bool) bool {
	return in == "exit" && breakline
}

func restartResolver(mode, fixed string) error {
	config := &edulink.LinkConfig{}

	switch mode {
	case "phy":
		config.Mode = edulink.ANModePHY
	case "fixed":
		config.Mode = edulink.ANModeFixed

		fixedLink, err := edulink.ParseFixedLink(fixed)
		if err != nil {
			return err
		}
		config.Fixed = fixedLink
	case "sgmii":
		config.Mode = edulink.ANModeSGMII
	case "1000base-x":
		config.Mode = edulink.ANMode1000BaseX
	default:
		return ErrUnknownMode
	}

	r, err := edulink.NewResolver(config, mac)
	if err != nil {
		return err
	}

	if cancelResolver != nil {
		cancelResolver()
	}

	ctx, cancel := context.WithCancel(rootCtx)
	cancelResolver = cancel

	resolver = r
	resolver.RunResolver(ctx)
	resolver.Start()
	return nil
}

// ExecutePrompt builds the simulated MAC, starts an SGMII resolver
// against it and hands control to the REPL. This is called by
// main.main().
func ExecutePrompt() {
	ctx, cancel := context.WithCancel(context.Background())
	rootCtx = ctx

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		<-ch
		log.Info().Msg("edulink close requested")
		cancel()
	}()

	log.Logger = log.Output(zerolog.NewConsoleWriter())
	log.Logger = log.Level(zerolog.InfoLevel)

	mac = newSimMAC()
	if err := restartResolver("sgmii", ""); err != nil {
		log.Error().Msgf("failed to start resolver: %v", err)
		return
	}

	fmt.Println(motd)

	p := prompt.New(
		executor,
		completer,
		prompt.OptionPrefix("> "),
		prompt.OptionSetExitCheckerOnInput(exitChecker),
	)
	p.Run()
}

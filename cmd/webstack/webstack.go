package main

import (
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
	"strings"
	"unicode"
	"webstack/internal/cli/stack"
	"webstack/internal/cli/version"
	"webstack/internal/env"
)

var rootCmd = &cobra.Command{
	Use:   "webstack [command] [flags]",
	Short: "Provision and tear down the web application reference stack on AWS",
	Run: func(c *cobra.Command, _ []string) {
		if err := c.Help(); err != nil {
			log.Debug().Msgf("ignoring cobra error %q", err.Error())
		}
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func Usage(cmd *cobra.Command) error {
	if cmd == nil {
		return fmt.Errorf("nil command")
	}

	usage := []string{fmt.Sprintf("Usage: %s", cmd.UseLine())}

	if cmd.HasAvailableSubCommands() {
		usage = append(usage, "\nCommands:")
		for _, subCommand := range cmd.Commands() {
			if subCommand.IsAvailableCommand() {
				usage = append(usage, fmt.Sprintf("  %s %-30s  %s", cmd.CommandPath(), subCommand.Name(), subCommand.Short))
			}
		}
	}

	if len(cmd.LocalNonPersistentFlags().FlagUsages()) != 0 {
		usage = append(usage, "\nFlags:")
		usage = append(usage, strings.TrimRightFunc(cmd.LocalNonPersistentFlags().FlagUsages(), unicode.IsSpace))
	}

	usage = append(usage, "\nCommon flags:")
	if len(cmd.PersistentFlags().FlagUsages()) != 0 {
		usage = append(usage, strings.TrimRightFunc(cmd.PersistentFlags().FlagUsages(), unicode.IsSpace))
	}
	if len(cmd.InheritedFlags().FlagUsages()) != 0 {
		usage = append(usage, strings.TrimRightFunc(cmd.InheritedFlags().FlagUsages(), unicode.IsSpace))
	}

	usage = append(usage, fmt.Sprintf("\nUse '%s [command] --help' for more information about a command.\n", cmd.Root().CommandPath()))

	cmd.Println(strings.Join(usage, "\n"))

	return nil
}

func init() {
	rootCmd.AddCommand(stack.Provision)
	rootCmd.AddCommand(stack.Teardown)
	rootCmd.AddCommand(stack.CleanupImage)
	rootCmd.AddCommand(version.Version)

	rootCmd.PersistentFlags().BoolP("help", "h", false, "help for this command")
	rootCmd.PersistentFlags().StringVarP(&env.Config.Region, "region", "r", env.DefaultRegion, "AWS region")
	rootCmd.SetUsageFunc(Usage)
}

func configureLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid LOG_LEVEL")
		}
		zerolog.SetGlobalLevel(level)
	}
}

func main() {
	configureLogging()
	Execute()
}

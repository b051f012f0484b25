package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hiveden/hivefetch/internal/config"
	"github.com/hiveden/hivefetch/internal/docker"
	"github.com/hiveden/hivefetch/internal/fetch"
	"github.com/hiveden/hivefetch/internal/hw"
	"github.com/hiveden/hivefetch/internal/packages/arch"
	"github.com/hiveden/hivefetch/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := buildRootCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func buildRootCommand() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "hivefetch",
		Short:         "Print a system summary next to the distribution logo",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(viper.GetViper(), configFile); err != nil {
				return err
			}

			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				viper.Set(config.KeyColor, report.ColorNever.String())
			}

			settings, err := config.FromViper(viper.GetViper())
			if err != nil {
				return err
			}

			return run(cmd, settings)
		},
	}

	config.SetDefaults(viper.GetViper())

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.String("format", config.FormatText, "output format (text or yaml)")
	flags.String("color", report.ColorAuto.String(), "colour output: auto, always or never")
	flags.Bool("no-color", false, "same as --color=never")
	flags.StringSlice("fields", nil, "comma separated report fields, in order")
	flags.StringSlice("os-release", nil, "os-release descriptor paths to try")
	flags.Bool("verbose", false, "log collection details to stderr")
	flags.Duration("docker-timeout", docker.DefaultTimeout, "timeout for the containers field")

	viper.BindPFlag(config.KeyFormat, flags.Lookup("format"))
	viper.BindPFlag(config.KeyColor, flags.Lookup("color"))
	viper.BindPFlag(config.KeyFields, flags.Lookup("fields"))
	viper.BindPFlag(config.KeyOSRelease, flags.Lookup("os-release"))
	viper.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))
	viper.BindPFlag(config.KeyDockerTimeout, flags.Lookup("docker-timeout"))

	return rootCmd
}

func run(cmd *cobra.Command, settings config.Settings) error {
	logger := log.New(io.Discard, "hivefetch: ", 0)
	if settings.Verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	runner := fetch.New(hw.NewSystemProbe(), settings, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)

	if report.Has(settings.Fields, report.FieldPackages) {
		pacman, err := arch.New()
		if err != nil {
			logger.Printf("packages: %v", err)
		} else {
			defer pacman.Close()
			runner.Collector.Packages = pacman
		}
	}

	if report.Has(settings.Fields, report.FieldContainers) {
		dm, err := docker.NewManager(settings.DockerTimeout)
		if err != nil {
			logger.Printf("containers: %v", err)
		} else {
			defer dm.Close()
			runner.Collector.Containers = dm
		}
	}

	return runner.Run(cmd.Context())
}

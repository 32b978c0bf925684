// Package cmd provides the command-line interface of the parking lot
// controller.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/parkinglot/config"
)

var (
	configFile     string
	envFile        string
	recordPath     string
	verbose        bool
	strictArrival  bool
	spot1Departure bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "parkinglot",
	Short: "Controller of a gated two-space parking lot.",
	Long: `Controller of a gated two-space parking lot. It tracks the ` +
		`occupancy of the spots, opens the gate for arriving and departing ` +
		`vehicles and shows the status on a 16x2 display.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. On failure it exits through atexit, so that pending
// recordings are flushed.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "",
		"TOML file with the lot parameters")
	flags.StringVar(&envFile, "env-file", ".env",
		"file with PARKINGLOT_* variables, ignored when missing")
	flags.StringVar(&recordPath, "record", "",
		"record the run into <path>.sqlite3")
	flags.BoolVar(&verbose, "verbose", false,
		"log the lot status with every transition")
	flags.BoolVar(&strictArrival, "strict-arrival", false,
		"do not take a space when an arriving vehicle finds no free spot")
	flags.BoolVar(&spot1Departure, "spot1-departure", false,
		"let the gate release spot 1 when spot 2 is free")
}

// loadConfig reads the configuration and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFile, envFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()

	if flags.Changed("record") {
		cfg.Recording.Path = recordPath
	}

	if flags.Changed("strict-arrival") {
		cfg.Lot.StrictArrivalAccounting = strictArrival
	}

	if flags.Changed("spot1-departure") {
		cfg.Lot.RecognizeSpot1Departure = spot1Departure
	}

	return cfg, cfg.Validate()
}

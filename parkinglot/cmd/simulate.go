package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/sarchlab/parkinglot/config"
	"github.com/sarchlab/parkinglot/device/virtual"
	"github.com/sarchlab/parkinglot/lcd"
	"github.com/sarchlab/parkinglot/scenario"
	"github.com/sarchlab/parkinglot/station"
	"github.com/sarchlab/parkinglot/timing"
)

var showDisplay bool

var simulateCmd = &cobra.Command{
	Use:   "simulate [script.toml]",
	Short: "Replay a scenario on a simulated clock.",
	Long: "Replay a scenario script on a simulated clock and check its " +
		"expectations. Without a script, the built-in demo is played.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		script := scenario.Demo()
		if len(args) == 1 {
			script, err = scenario.Load(args[0])
			if err != nil {
				return err
			}
		}

		return simulate(cfg, script, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVar(&showDisplay, "display", false,
		"print the display frames")
}

func simulate(
	cfg config.Config,
	script scenario.Script,
	out, errOut io.Writer,
) error {
	clock := timing.NewManualClock(0)
	devices := scenario.Devices{
		Transducer: virtual.NewTransducer(),
		Presence:   virtual.NewPresence(),
	}

	displayOut := io.Discard
	if showDisplay {
		displayOut = out
	}

	builder := station.MakeBuilder().
		WithConfig(cfg).
		WithClock(clock).
		WithTransducer(devices.Transducer).
		WithPresenceSensor(devices.Presence).
		WithGateActuator(virtual.NewGate()).
		WithDisplay(lcd.New(displayOut).WithANSI(false)).
		WithLogger(log.New(out, "", 0))
	if verbose {
		builder = builder.WithVerbose()
	}

	s, err := builder.Build("Lot")
	if err != nil {
		return err
	}

	result := scenario.NewPlayer(script, clock, s.Loop(), devices, s).Play()

	fmt.Fprintf(out, "scenario %q: %d ticks, ended at %s\n",
		script.Name, result.Ticks, result.End)
	fmt.Fprintln(out, s.Stats())

	if err := s.Terminate(); err != nil {
		return err
	}

	for _, f := range result.Failures {
		fmt.Fprintf(errOut, "FAIL %s\n", f)
	}

	if !result.Passed() {
		return fmt.Errorf("%d expectations failed", len(result.Failures))
	}

	return nil
}

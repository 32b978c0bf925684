package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sarchlab/parkinglot/config"
	"github.com/sarchlab/parkinglot/device/virtual"
	"github.com/sarchlab/parkinglot/lcd"
	"github.com/sarchlab/parkinglot/scenario"
	"github.com/sarchlab/parkinglot/station"
	"github.com/sarchlab/parkinglot/timing"
)

var skipBanner bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the controller in real time.",
	Long: "Run the controller on the system clock with virtual devices. " +
		"Commands read from stdin act on the devices:\n" +
		"  car <cm>  place a car in front of the spot 1 sensor\n" +
		"  clear     remove it\n" +
		"  press     activate the gate sensor\n" +
		"  release   deactivate it\n" +
		"  pulse     press and release\n" +
		"  quit      stop the controller",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return runRealTime(ctx, cfg,
			cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&skipBanner, "no-banner", false,
		"skip the startup screens")
}

// Startup screen durations. The controller clock starts before the screens,
// so the loop begins past the presence debounce window and with every
// cadence due.
var (
	bannerHold = 2 * time.Second
	readyHold  = time.Second
)

func runRealTime(
	ctx context.Context,
	cfg config.Config,
	in io.Reader,
	out, errOut io.Writer,
) error {
	clock := timing.NewSystemClock()

	display := lcd.New(out)
	if !skipBanner {
		lcd.Banner(display)
		if !sleep(ctx, bannerHold) {
			return nil
		}

		lcd.Ready(display)
		if !sleep(ctx, readyHold) {
			return nil
		}
	}

	devices := scenario.Devices{
		Transducer: virtual.NewTransducer(),
		Presence:   virtual.NewPresence(),
	}

	builder := station.MakeBuilder().
		WithConfig(cfg).
		WithClock(clock).
		WithTransducer(devices.Transducer).
		WithPresenceSensor(devices.Presence).
		WithGateActuator(virtual.NewGate()).
		WithDisplay(display).
		WithLogger(log.New(errOut, "", log.LstdFlags))
	if verbose {
		builder = builder.WithVerbose()
	}

	s, err := builder.Build("Lot")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go readCommands(in, devices, cancel, errOut)

	if err := s.Run(ctx); err != nil {
		return err
	}

	fmt.Fprintln(errOut, s.Stats())

	return s.Terminate()
}

// readCommands applies the commands read from in until it reads "quit". The
// end of the input leaves the controller running; only quit and an interrupt
// stop it.
func readCommands(
	in io.Reader,
	devices scenario.Devices,
	quit func(),
	errOut io.Writer,
) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" {
			quit()
			return
		}

		if line == "" {
			continue
		}

		step, err := scenario.ParseCommand(line)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}

		if step.Action == scenario.ActionPulse {
			devices.Presence.Press()
			time.AfterFunc(scenario.DefaultHold, devices.Presence.Release)

			continue
		}

		devices.Apply(step)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "reading commands: %v\n", err)
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

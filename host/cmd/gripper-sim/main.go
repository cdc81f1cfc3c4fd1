// gripper-sim runs the gripper firmware against simulated peripherals.
// Typed characters go to the firmware's serial console; control keys press
// buttons and turn the potentiometers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gripper/config"
	"gripper/sim"
)

var (
	verboseFlag bool
	configFlag  string
	eepromFlag  string
	metricsFlag string
	jitterFlag  int
	seedFlag    int64
	drainFlag   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "gripper-sim",
	Short: "Run the gripper firmware on simulated hardware",
	RunE: func(_ *cobra.Command, _ []string) error {
		log.SetLevel(log.InfoLevel)
		if verboseFlag {
			log.SetLevel(log.DebugLevel)
		}
		return run()
	},
	SilenceUsage: true,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output, including firmware debug lines")
	f.StringVarP(&configFlag, "config", "c", "", "YAML board configuration; empty uses the built-in defaults")
	f.StringVar(&eepromFlag, "eeprom", "gripper.eeprom", "EEPROM image file; empty keeps it in memory")
	f.StringVar(&metricsFlag, "metrics", "", "write peripheral counters to this Prometheus textfile on exit")
	f.IntVar(&jitterFlag, "jitter", 2, "ADC noise amplitude in counts")
	f.Int64Var(&seedFlag, "seed", 1, "ADC noise seed")
	f.DurationVar(&drainFlag, "drain", 500*time.Millisecond, "keep running this long after input ends")
}

func run() error {
	cfg, err := config.ReadFile(configFlag)
	if err != nil {
		return err
	}
	cfg.Debug = cfg.Debug || verboseFlag

	board, err := sim.NewBoard(cfg, sim.Options{
		EEPROMPath: eepromFlag,
		Jitter:     jitterFlag,
		Seed:       seedFlag,
		Output:     os.Stdout,
		Drain:      drainFlag,
	})
	if err != nil {
		return err
	}
	defer board.Close()

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer term.Restore(fd, old)
		fmt.Fprintf(os.Stderr, "%s\r\n", sim.KeyHelp)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runErr := board.Run(ctx, os.Stdin)

	if metricsFlag != "" {
		if err := board.Metrics.WriteTextfile(metricsFlag); err != nil {
			log.Errorf("writing metrics: %v", err)
		}
	}
	return runErr
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

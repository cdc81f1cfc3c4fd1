package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gripper/host/console"
	"gripper/host/serial"
)

// RootCmd is the entry point of gripperctl.
var RootCmd = &cobra.Command{
	Use:   "gripperctl",
	Short: "Talk to a servo gripper over its serial console",
}

// flags
var (
	rootVerboseFlag bool
	rootPortFlag    string
	rootBaudFlag    int
	rootQuietFlag   time.Duration
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVarP(&rootPortFlag, "port", "p", "", "serial device, e.g. /dev/ttyUSB0")
	RootCmd.PersistentFlags().IntVarP(&rootBaudFlag, "baud", "b", 9600, "baud rate")
	RootCmd.PersistentFlags().DurationVar(&rootQuietFlag, "quiet", 300*time.Millisecond, "a reply ends after the line has been idle this long")
}

// ConfigureVerbosity sets the log level from the parsed flags. Every
// subcommand calls it first.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

func openPort() (serial.Port, error) {
	cfg := serial.DefaultConfig(rootPortFlag)
	cfg.Baud = rootBaudFlag
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}
	log.Debugf("opened %s at %d baud", cfg.Device, cfg.Baud)
	return port, nil
}

func openSession() (*console.Session, serial.Port, error) {
	port, err := openPort()
	if err != nil {
		return nil, nil, err
	}
	// Stale bytes from before we connected would end up in the first reply.
	if err := port.Flush(); err != nil {
		log.Warningf("flush %s: %v", rootPortFlag, err)
	}
	return console.NewSession(port, rootQuietFlag, 10*time.Second), port, nil
}

// Execute runs the CLI.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

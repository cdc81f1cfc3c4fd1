package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var okString = color.GreenString("[ OK ]")
var failString = color.RedString("[FAIL]")

func init() {
	RootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send LINE...",
	Short: "Send command lines and print each reply",
	Long: "Send each argument as one line, in order. For example:\n" +
		"  gripperctl -p /dev/ttyUSB0 send menu 2 S,90,45,120,30",
	Args: cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()
		if err := runSend(args); err != nil {
			fmt.Fprintln(os.Stderr, failString, err)
			os.Exit(1)
		}
	},
}

// replyFailed reports whether the firmware rejected the line.
func replyFailed(reply string) bool {
	return strings.Contains(reply, "Invalid") || strings.Contains(reply, "Error")
}

func runSend(lines []string) error {
	s, port, err := openSession()
	if err != nil {
		return err
	}
	defer port.Close()

	failed := 0
	for _, line := range lines {
		reply, err := s.Command(line)
		if err != nil {
			return err
		}
		status := okString
		if replyFailed(reply) {
			status = failString
			failed++
		}
		fmt.Printf("%s %s\n", status, line)
		log.Debugf("reply to %q: %q", line, reply)
		fmt.Print(reply)
		if !strings.HasSuffix(reply, "\n") {
			fmt.Println()
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines rejected", failed, len(lines))
	}
	return nil
}

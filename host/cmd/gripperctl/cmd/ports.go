package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gripper/host/serial"
)

func init() {
	RootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		if err := runPorts(); err != nil {
			fmt.Fprintln(os.Stderr, failString, err)
			os.Exit(1)
		}
	},
}

func runPorts() error {
	ports, err := serial.ListPorts()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Println("no serial ports found")
		return nil
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Port", "USB", "VID", "PID", "Serial")
	for _, p := range ports {
		usb := "no"
		if p.USB {
			usb = "yes"
		}
		if err := table.Append([]string{p.Name, usb, p.VID, p.PID, p.SerialNumber}); err != nil {
			return err
		}
	}
	return table.Render()
}

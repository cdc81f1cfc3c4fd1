package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gripper/host/console"
)

func init() {
	RootCmd.AddCommand(slotsCmd)
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Print the saved positions; the gripper is left at the menu",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		if err := runSlots(); err != nil {
			fmt.Fprintln(os.Stderr, failString, err)
			os.Exit(1)
		}
	},
}

func printSlots(w io.Writer, slots []console.Slot) error {
	table := tablewriter.NewWriter(w)
	table.Header("Slot", "Base", "Arm1", "Arm2", "Gripper")
	for _, s := range slots {
		a := s.Angles
		err := table.Append([]string{
			strconv.Itoa(s.Index),
			strconv.Itoa(a.Base),
			strconv.Itoa(a.Arm1),
			strconv.Itoa(a.Arm2),
			strconv.Itoa(a.Gripper),
		})
		if err != nil {
			return err
		}
	}
	return table.Render()
}

func runSlots() error {
	s, port, err := openSession()
	if err != nil {
		return err
	}
	defer port.Close()

	slots, err := s.ListSlots()
	if err != nil {
		return err
	}
	fmt.Printf("%s %d saved positions\n", okString, len(slots))
	if len(slots) == 0 {
		return nil
	}
	return printSlots(os.Stdout, slots)
}

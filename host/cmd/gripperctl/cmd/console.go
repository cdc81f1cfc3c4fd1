package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	RootCmd.AddCommand(consoleCmd)
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive line console: stdin lines go to the gripper, its output to stdout",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()
		if err := runConsole(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, failString, err)
			os.Exit(1)
		}
	},
}

// errInputClosed ends the session once stdin is exhausted.
var errInputClosed = errors.New("input closed")

func forwardLines(ctx context.Context, in io.Reader, port io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := io.WriteString(port, sc.Text()+"\r"); err != nil {
			return fmt.Errorf("write port: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return errInputClosed
}

func copyOutput(ctx context.Context, port io.Reader, out io.Writer) error {
	buf := make([]byte, 256)
	for ctx.Err() == nil {
		n, err := port.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read port: %w", err)
		}
	}
	return ctx.Err()
}

func runConsole(in io.Reader, out io.Writer) error {
	port, err := openPort()
	if err != nil {
		return err
	}
	defer port.Close()
	log.Infof("connected to %s, end input with Ctrl-D", rootPortFlag)

	eg, ctx := errgroup.WithContext(context.Background())
	eg.Go(func() error { return forwardLines(ctx, in, port) })
	eg.Go(func() error { return copyOutput(ctx, port, out) })
	err = eg.Wait()
	if errors.Is(err, errInputClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Package sim runs the gripper firmware on a host with simulated
// peripherals. The keyboard goroutine plays the part of the receive
// interrupt.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"gripper/config"
	"gripper/controller"
	"gripper/core"
)

// ErrQuit is returned by HandleKey when the operator asks to exit.
var ErrQuit = errors.New("quit requested")

// Options tunes the simulated hardware.
type Options struct {
	// EEPROMPath is the image file; empty keeps the EEPROM in memory.
	EEPROMPath string
	// Jitter is the ADC noise amplitude in counts.
	Jitter int
	// Seed seeds the ADC noise.
	Seed int64
	// Output receives transmitted bytes.
	Output io.Writer
	// PressHold is how long a simulated button stays down. Zero derives
	// it from the loop timing so that every mode's poll sees the press.
	PressHold time.Duration
	// Drain is how long to keep running after input ends.
	Drain time.Duration
	// Sleeper replaces the real clock for the firmware's delays.
	Sleeper core.Sleeper
}

// Board is a simulated gripper: peripherals plus the real controller.
type Board struct {
	Config     *config.Config
	Controller *controller.Controller
	Console    *core.Serial
	ADC        *ADC
	PWM        *PWM
	GPIO       *GPIO
	EEPROM     *EEPROM
	UART       *UART
	Metrics    *Metrics

	hold     time.Duration
	drain    time.Duration
	selected core.Joint
}

// NewBoard builds the peripherals and assembles the firmware on them.
func NewBoard(cfg *config.Config, opts Options) (*Board, error) {
	c := *cfg
	if c.Timing.Idle == 0 {
		c.Timing.Idle = time.Millisecond
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	if opts.Sleeper == nil {
		opts.Sleeper = core.SystemSleeper
	}

	m := NewMetrics()
	b := &Board{
		Config:  &c,
		ADC:     NewADC(opts.Jitter, opts.Seed),
		PWM:     NewPWM(m),
		GPIO:    NewGPIO(m),
		UART:    NewUART(opts.Output, m),
		Metrics: m,
		hold:    opts.PressHold,
		drain:   opts.Drain,
	}
	if b.hold == 0 {
		b.hold = defaultHold(&c)
	}

	if opts.EEPROMPath == "" {
		b.EEPROM = NewMemoryEEPROM(DefaultEEPROMSize, m)
	} else {
		e, err := OpenEEPROM(opts.EEPROMPath, DefaultEEPROMSize, m)
		if err != nil {
			return nil, err
		}
		b.EEPROM = e
	}

	b.nameButtons()
	core.SetDebugWriter(func(s string) { log.Debug(s) })

	ctrl, console, err := controller.Assemble(&c, controller.Drivers{
		ADC:     b.ADC,
		PWM:     b.PWM,
		GPIO:    b.GPIO,
		EEPROM:  b.EEPROM,
		UART:    b.UART,
		Sleeper: opts.Sleeper,
	})
	if err != nil {
		b.EEPROM.Close()
		return nil, fmt.Errorf("assemble firmware: %w", err)
	}
	b.Controller = ctrl
	b.Console = console
	return b, nil
}

// defaultHold covers the longest blocking stretch of one loop iteration
// plus the debounce re-sample.
func defaultHold(c *config.Config) time.Duration {
	manual := c.Timing.ManualDelay + time.Duration(4*c.Filter.Samples)*c.Timing.SamplePause
	longest := c.Timing.Dwell
	if manual > longest {
		longest = manual
	}
	return longest + 2*c.Timing.Settle + c.Timing.Idle
}

func (b *Board) nameButtons() {
	p := b.Config.Pins
	b.GPIO.Name(core.GPIOPin(p.Mode), core.ButtonMode.String())
	b.GPIO.Name(core.GPIOPin(p.Save), core.ButtonSave.String())
	b.GPIO.Name(core.GPIOPin(p.Play), core.ButtonPlay.String())
	for i, name := range []string{"led_manual", "led_serial", "led_slots"} {
		b.GPIO.Name(core.GPIOPin(p.ModeLEDs[i]), name)
	}
	b.GPIO.Name(core.GPIOPin(p.SlotLEDs[0]), "led_slot_bit0")
	b.GPIO.Name(core.GPIOPin(p.SlotLEDs[1]), "led_slot_bit1")
}

// Close releases the EEPROM image.
func (b *Board) Close() error {
	return b.EEPROM.Close()
}

// Press holds a button down long enough for the debouncer to accept it.
func (b *Board) Press(btn core.Button) {
	var pin uint32
	switch btn {
	case core.ButtonMode:
		pin = b.Config.Pins.Mode
	case core.ButtonSave:
		pin = b.Config.Pins.Save
	case core.ButtonPlay:
		pin = b.Config.Pins.Play
	default:
		return
	}
	log.Infof("%s button pressed", btn)
	b.GPIO.Press(core.GPIOPin(pin), b.hold)
}

// Receive hands one byte to the firmware's receive handler.
func (b *Board) Receive(c byte) {
	b.Metrics.rxBytes.Inc()
	if c == '\r' || c == '\n' {
		b.Metrics.lines.Inc()
	}
	b.Console.HandleRx(c)
}

// Run boots the firmware and runs the control loop and the input reader
// until input ends, the operator quits or ctx is cancelled.
func (b *Board) Run(ctx context.Context, in io.Reader) error {
	if err := b.Controller.Boot(); err != nil {
		return err
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return b.Controller.Run(ctx)
	})
	eg.Go(func() error {
		return b.readInput(ctx, in)
	})
	err := eg.Wait()
	if errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (b *Board) readInput(ctx context.Context, in io.Reader) error {
	keys := make(chan byte)
	errc := make(chan error, 1)
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := in.Read(buf)
			for _, c := range buf[:n] {
				select {
				case keys <- c:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				errc <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errc:
			if errors.Is(err, io.EOF) {
				return b.drainAndQuit(ctx)
			}
			return fmt.Errorf("read input: %w", err)
		case c := <-keys:
			if err := b.HandleKey(c); err != nil {
				return err
			}
		}
	}
}

// drainAndQuit lets the firmware take the last line and run for the
// drain period before stopping.
func (b *Board) drainAndQuit(ctx context.Context) error {
	t := time.NewTicker(5 * time.Millisecond)
	defer t.Stop()
	for b.Console.Lines().Ready() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(b.drain):
	}
	return ErrQuit
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds every tunable of the gripper firmware. The zero value is
// not usable; start from Default or Load.
type Config struct {
	Baud        uint32 `yaml:"baud"`
	Debug       bool   `yaml:"debug"`
	Pins        Pins   `yaml:"pins"`
	Timing      Timing `yaml:"timing"`
	Filter      Filter `yaml:"filter"`
	Manual      Manual `yaml:"manual"`
	Servo       Servo  `yaml:"servo"`
	InitialPose Pose   `yaml:"initial_pose"`
}

// Pins assigns hardware resources. Pots and Servos are in base, arm1,
// arm2, gripper order.
type Pins struct {
	Pots     []uint8  `yaml:"pots"`
	Servos   []uint32 `yaml:"servos"`
	Mode     uint32   `yaml:"button_mode"`
	Save     uint32   `yaml:"button_save"`
	Play     uint32   `yaml:"button_play"`
	ModeLEDs []uint32 `yaml:"mode_leds"`
	SlotLEDs []uint32 `yaml:"slot_leds"`
}

// Timing holds the blocking delays of the main loop.
type Timing struct {
	Settle      time.Duration `yaml:"settle"`
	ManualDelay time.Duration `yaml:"manual_delay"`
	Dwell       time.Duration `yaml:"dwell"`
	SamplePause time.Duration `yaml:"sample_pause"`
	Idle        time.Duration `yaml:"idle"`
}

// Filter configures potentiometer averaging.
type Filter struct {
	Samples  int `yaml:"samples"`
	Deadband int `yaml:"deadband"`
}

// Manual configures the potentiometer mode.
type Manual struct {
	// Throttle is the number of manual iterations per servo update.
	Throttle int `yaml:"throttle"`
}

// DutyRange is a compare value span in timer ticks.
type DutyRange struct {
	Min uint16 `yaml:"min"`
	Max uint16 `yaml:"max"`
}

// Servo holds the angle to duty mapping of both timer pairs.
type Servo struct {
	PairA          DutyRange `yaml:"pair_a"`
	PairB          DutyRange `yaml:"pair_b"`
	GripperDivisor int       `yaml:"gripper_divisor"`
}

// Pose is a joint angle set in degrees.
type Pose struct {
	Base    int `yaml:"base"`
	Arm1    int `yaml:"arm1"`
	Arm2    int `yaml:"arm2"`
	Gripper int `yaml:"gripper"`
}

// Load parses YAML on top of Default, so omitted keys keep their defaults.
func Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile loads a YAML config file. An empty path yields Default.
func ReadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// applyDefaults replaces values that would stall or break the loop
func applyDefaults(cfg *Config) {
	if cfg.Baud == 0 {
		cfg.Baud = 9600
	}
	if cfg.Filter.Samples < 1 {
		cfg.Filter.Samples = 5
	}
	if cfg.Manual.Throttle < 1 {
		cfg.Manual.Throttle = 3
	}
	if cfg.Servo.GripperDivisor < 1 {
		cfg.Servo.GripperDivisor = 3
	}
}

// Validate checks ranges that applyDefaults cannot repair.
func (c *Config) Validate() error {
	if c.Servo.PairA.Min >= c.Servo.PairA.Max {
		return fmt.Errorf("servo.pair_a: min %d must be below max %d", c.Servo.PairA.Min, c.Servo.PairA.Max)
	}
	if c.Servo.PairB.Min >= c.Servo.PairB.Max {
		return fmt.Errorf("servo.pair_b: min %d must be below max %d", c.Servo.PairB.Min, c.Servo.PairB.Max)
	}
	for _, p := range []struct {
		name string
		got  int
		want int
	}{
		{"pins.pots", len(c.Pins.Pots), 4},
		{"pins.servos", len(c.Pins.Servos), 4},
		{"pins.mode_leds", len(c.Pins.ModeLEDs), 3},
		{"pins.slot_leds", len(c.Pins.SlotLEDs), 2},
	} {
		if p.got != p.want {
			return fmt.Errorf("%s: want %d entries, got %d", p.name, p.want, p.got)
		}
	}
	if c.Filter.Deadband < 0 {
		return fmt.Errorf("filter.deadband must not be negative")
	}
	for name, v := range map[string]int{
		"base":    c.InitialPose.Base,
		"arm1":    c.InitialPose.Arm1,
		"arm2":    c.InitialPose.Arm2,
		"gripper": c.InitialPose.Gripper,
	} {
		if v < 0 || v > 180 {
			return fmt.Errorf("initial_pose.%s: %d outside 0..180", name, v)
		}
	}
	return nil
}

// Default returns the configuration of the reference board.
func Default() *Config {
	return &Config{
		Baud: 9600,
		Pins: Pins{
			Pots:     []uint8{0, 1, 2, 3},
			Servos:   []uint32{2, 3, 4, 5},
			Mode:     10,
			Save:     11,
			Play:     12,
			ModeLEDs: []uint32{13, 14, 15},
			SlotLEDs: []uint32{16, 17},
		},
		Timing: Timing{
			Settle:      50 * time.Millisecond,
			ManualDelay: 30 * time.Millisecond,
			Dwell:       1000 * time.Millisecond,
			SamplePause: 10 * time.Millisecond,
		},
		Filter: Filter{
			Samples:  5,
			Deadband: 5,
		},
		Manual: Manual{
			Throttle: 3,
		},
		Servo: Servo{
			PairA:          DutyRange{Min: 15, Max: 37},
			PairB:          DutyRange{Min: 2000, Max: 4000},
			GripperDivisor: 3,
		},
		InitialPose: Pose{Base: 90, Arm1: 180, Arm2: 90, Gripper: 0},
	}
}

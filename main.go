package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime/pprof"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	yaml "gopkg.in/yaml.v2"
)

// Config holds the configurable options for the application
type Config struct {
	Zoom         float64 `yaml:"zoom"`
	Dx           float64 `yaml:"dx"`
	Dy           float64 `yaml:"dy"`
	Frames       int     `yaml:"frames"`
	FrameDelayMs int     `yaml:"frameDelayMs"`
	HUD          bool    `yaml:"hud"`
	Clear        bool    `yaml:"clear"`
	Region       string  `yaml:"region"`
}

func defaultConfig() Config {
	return Config{
		Zoom:         1.0,
		Dx:           0.0,
		Dy:           0.0,
		Frames:       100,
		FrameDelayMs: 20, // milliseconds
		HUD:          false,
		Clear:        true,
	}
}

// loadConfig reads a YAML config file on top of the defaults.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()

	configFile, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(configFile, &config)
	if err != nil {
		return config, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	return config, nil
}

// Validate reports settings that cannot produce a well formed view window.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Zoom) || math.IsInf(c.Zoom, 0) || c.Zoom <= 0:
		return fmt.Errorf("zoom must be a positive number, got %v", c.Zoom)
	case math.IsNaN(c.Dx) || math.IsInf(c.Dx, 0):
		return fmt.Errorf("dx must be finite, got %v", c.Dx)
	case math.IsNaN(c.Dy) || math.IsInf(c.Dy, 0):
		return fmt.Errorf("dy must be finite, got %v", c.Dy)
	case c.Frames <= 0:
		return fmt.Errorf("frames must be positive, got %d", c.Frames)
	case c.FrameDelayMs < 0:
		return fmt.Errorf("delay must not be negative, got %d", c.FrameDelayMs)
	}
	return nil
}

type options struct {
	config  Config
	stream  bool
	profile bool
}

// parseArgs layers command line flags over the optional config file.
func parseArgs(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("mandelzoom", flag.ContinueOnError)
	fs.SetOutput(output)

	flags := defaultConfig()
	fs.Float64Var(&flags.Zoom, "zoom", flags.Zoom, "Target zoom factor reached on the last frame")
	fs.Float64Var(&flags.Dx, "dx", flags.Dx, "Target horizontal pan of the view center")
	fs.Float64Var(&flags.Dy, "dy", flags.Dy, "Target vertical pan of the view center")
	fs.IntVar(&flags.Frames, "frames", flags.Frames, "Number of animation frames")
	fs.IntVar(&flags.FrameDelayMs, "delay", flags.FrameDelayMs, "Delay between frames in milliseconds")
	fs.BoolVar(&flags.HUD, "hud", flags.HUD, "Show a status line under each frame")
	fs.BoolVar(&flags.Clear, "clear", flags.Clear, "Clear the display between frames")
	fs.StringVar(&flags.Region, "region", flags.Region, "Zoom into a named landmark: "+landmarkNames())
	configPath := fs.String("config", "", "Path to a YAML config file")
	fs.BoolVar(&opts.stream, "stream", false, "Write frames to stdout without the terminal UI")
	fs.BoolVar(&opts.profile, "profile", false, "profile cpu")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	config := defaultConfig()
	if *configPath != "" {
		var err error
		config, err = loadConfig(*configPath)
		if err != nil {
			return opts, err
		}
	}

	// Override config with command-line flags if provided
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "zoom":
			config.Zoom = flags.Zoom
		case "dx":
			config.Dx = flags.Dx
		case "dy":
			config.Dy = flags.Dy
		case "frames":
			config.Frames = flags.Frames
		case "delay":
			config.FrameDelayMs = flags.FrameDelayMs
		case "hud":
			config.HUD = flags.HUD
		case "clear":
			config.Clear = flags.Clear
		case "region":
			config.Region = flags.Region
		}
	})

	if config.Region != "" {
		zoom, dx, dy, err := landmarkTarget(config.Region)
		if err != nil {
			return opts, err
		}
		config.Zoom, config.Dx, config.Dy = zoom, dx, dy
	}

	if err := config.Validate(); err != nil {
		return opts, err
	}

	opts.config = config
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("invalid arguments: %v", err)
	}

	if opts.profile {
		f, err := os.Create("cpu.prof")
		if err != nil {
			log.Fatalf("failed to create profile: %v", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(opts, os.Stdout); err != nil {
		log.Printf("Error running program: %v", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run(opts options, stdout *os.File) error {
	model := InitialModel(opts.config)
	m := &model

	if opts.stream || !isTerminal(stdout) {
		streamFrames(m, stdout, opts.config.Clear)
		return nil
	}

	p := tea.NewProgram(m, tea.WithOutput(stdout))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tea program: %w", err)
	}
	return nil
}

// streamFrames drives the model without a terminal UI and writes every frame
// to w. The display clear before each frame is best effort.
func streamFrames(m *Model, w io.Writer, clearScreen bool) {
	out := termenv.NewOutput(w)
	draw := func() {
		if clearScreen {
			out.ClearScreen()
		}
		fmt.Fprintln(w, m.View())
	}

	draw()
	processCmds(m, m.Init(), draw)
}

// processCmds runs tea commands synchronously against the model until it
// quits. onFrame is called after each frame advance.
func processCmds(m *Model, cmd tea.Cmd, onFrame func()) {
	cmds := []tea.Cmd{cmd}
	maxIterations := 4 * (m.plan.Frames + 1) // Prevent infinite loops
	iterations := 0

	for len(cmds) > 0 && iterations < maxIterations {
		iterations++
		cmd = cmds[0]
		cmds = cmds[1:]

		if cmd == nil {
			continue
		}

		msg := cmd()
		if batchMsg, ok := msg.(tea.BatchMsg); ok {
			// Unpack batch messages
			for _, batchCmd := range batchMsg {
				if batchCmd != nil {
					cmds = append(cmds, batchCmd)
				}
			}
			continue
		}
		if _, quit := msg.(tea.QuitMsg); quit {
			return
		}

		before := m.frame
		_, newCmd := m.Update(msg)
		if m.frame != before && onFrame != nil {
			onFrame()
		}
		if newCmd != nil {
			cmds = append(cmds, newCmd)
		}
	}
}

// vi-turtle draws a turtle driver program into a character grid.
//
// Usage examples:
//
// # Reference drawing to stdout
// ./vi-turtle
//
// # Custom program on a larger grid, written to a file
// ./vi-turtle -script star.yaml -rows 41 -cols 81 -o star.txt
//
// # Interactive view with stroke sounds
// ./vi-turtle -script square.toml -view -sound
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-turtle/audio"
	"github.com/lixenwraith/vi-turtle/config"
	"github.com/lixenwraith/vi-turtle/render"
	"github.com/lixenwraith/vi-turtle/script"
	"github.com/lixenwraith/vi-turtle/turtle"
)

var errNotTerminal = errors.New("-view requires stdout to be a terminal")

type options struct {
	configPath string
	scriptPath string
	rows       int
	cols       int
	output     string
	view       bool
	sound      bool
	debug      bool
}

func parseFlags(args []string, stderr io.Writer) (*options, map[string]bool, error) {
	opts := &options{}
	fs := flag.NewFlagSet("vi-turtle", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "vi-turtle.toml", "Config file (TOML), missing file uses defaults")
	fs.StringVar(&opts.scriptPath, "script", "", "Driver program (.toml, .yaml, .yml), empty runs the reference program")
	fs.IntVar(&opts.rows, "rows", 0, "Grid rows (overrides config)")
	fs.IntVar(&opts.cols, "cols", 0, "Grid columns (overrides config)")
	fs.StringVar(&opts.output, "o", "-", "Output file, '-' for stdout")
	fs.BoolVar(&opts.view, "view", false, "Show the drawing in an interactive terminal view")
	fs.BoolVar(&opts.sound, "sound", false, "Play a tone per drawn stroke")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to logs/")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return opts, set, nil
}

// resolveConfig layers defaults, config file, environment, then explicit flags
func resolveConfig(opts *options, set map[string]bool) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if set["rows"] {
		cfg.Rows = opts.rows
	}
	if set["cols"] {
		cfg.Cols = opts.cols
	}
	if set["script"] {
		cfg.Script = opts.scriptPath
	}
	if set["sound"] {
		cfg.Sound = opts.sound
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadProgram(path string) (script.Program, error) {
	if path == "" {
		return script.Reference(), nil
	}
	return script.Load(path)
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := resolveConfig(opts, set)
	if err != nil {
		return err
	}
	log.Printf("Config: %+v", *cfg)

	prog, err := loadProgram(cfg.Script)
	if err != nil {
		return err
	}

	t := turtle.New(render.NewGrid(cfg.Rows, cfg.Cols))

	var rec *audio.Recorder
	if cfg.Sound {
		rec = audio.NewRecorder(audio.Config{SampleRate: cfg.SampleRate, Volume: cfg.Volume})
		t.OnStroke = rec.Record
	}

	if err := script.Run(t, prog); err != nil {
		return err
	}

	if opts.view {
		if err := view(stdout, t.Grid(), cfg.Glyphs()); err != nil {
			return err
		}
	} else if err := writeOutput(opts.output, stdout, t, cfg.Glyphs()); err != nil {
		return err
	}

	if rec != nil && rec.Len() > 0 {
		playStrokes(rec, cfg.SampleRate, stderr)
	}
	return nil
}

// playbackSlack covers speaker buffering past the end of the last tone
const playbackSlack = time.Second

// playStrokes plays the recorded tones, bounded by their length plus slack
// Drawing already succeeded, so failures are reported and swallowed
func playStrokes(rec *audio.Recorder, sampleRate int, stderr io.Writer) {
	d := rec.Duration()
	log.Printf("Playing %d strokes over %v", rec.Len(), d)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, d+playbackSlack)
	defer cancel()

	if err := audio.Play(ctx, rec.Sequence(), sampleRate); err != nil {
		fmt.Fprintf(stderr, "Audio playback failed: %v (continuing without audio)\n", err)
	}
}

// writeOutput prints the grid framed by blank lines, the reference dump layout
func writeOutput(path string, stdout io.Writer, t *turtle.Turtle, glyphs render.Glyphs) error {
	w := stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := t.Render(w, glyphs); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func view(stdout io.Writer, g *render.Grid, glyphs render.Glyphs) error {
	if !isTerminal(stdout) {
		return errNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	render.View(screen, g, glyphs)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "vi-turtle: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/borttappat/Hydrix/internal/clickthrough"
	"github.com/borttappat/Hydrix/internal/config"
	"github.com/borttappat/Hydrix/internal/x11"
)

// openDisplayFunc opens a connection to the named X display; the empty
// string selects the display from the environment.
type openDisplayFunc func(display string) (clickthrough.Display, error)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run executes one invocation. A nil openDisplay connects through the real
// X11 layer; the configured display name is always routed through it.
func run(args []string, stdout, stderr io.Writer, openDisplay openDisplayFunc) int {
	fs := flag.NewFlagSet("clickthrough", flag.ContinueOnError)
	fs.SetOutput(stderr)
	restore := fs.Bool("restore", false, "restore the default input region")
	configPath := fs.String("config", "", "config file path")
	verbose := fs.Bool("verbose", false, "log connection diagnostics to stderr")
	fs.Usage = func() {
		printUsage(stderr)
		printOptions(stderr)
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if fs.NArg() < 1 {
		printUsage(stdout)
		return 1
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "unexpected extra arguments: %v\n", fs.Args()[1:])
		fmt.Fprintln(stderr, "")
		printUsage(stderr)
		return 2
	}
	windowID := fs.Arg(0)

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(stderr, "", 0)
	}

	if openDisplay == nil {
		openDisplay = func(display string) (clickthrough.Display, error) {
			return x11.OpenDisplay(display)
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if cfg.XAuthority != "" {
		_ = os.Setenv("XAUTHORITY", cfg.XAuthority)
	}
	if cfg.Display != "" {
		logger.Printf("using display %q from config", cfg.Display)
	} else {
		logger.Printf("using display %q from environment", os.Getenv("DISPLAY"))
	}

	setter := clickthrough.NewSetter(func() (clickthrough.Display, error) {
		return openDisplay(cfg.Display)
	})
	operate := setter.Set
	done := "Window %s is now click-through\n"
	if *restore {
		operate = setter.Restore
		done = "Window %s input shape restored\n"
	}

	id, err := operate(windowID)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger.Printf("request delivered for window %s", id)
	fmt.Fprintf(stdout, done, id)
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clickthrough [options] <window_id>")
	fmt.Fprintln(w, "  window_id can be decimal or hex (0x...)")
}

func printOptions(w io.Writer) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -restore        restore the window's default input region instead of clearing it")
	fmt.Fprintln(w, "  -config <path>  config file path (default: ~/.config/hydrix/config.yaml)")
	fmt.Fprintln(w, "  -verbose        log connection diagnostics to stderr")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Use -- before a window_id that begins with a dash.")
}

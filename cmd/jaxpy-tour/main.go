package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/jaxpy/jaxpy-tour/internal/config"
	"github.com/jaxpy/jaxpy-tour/internal/logging"
	"github.com/jaxpy/jaxpy-tour/internal/page"
	"github.com/jaxpy/jaxpy-tour/internal/tui"
)

const version = "0.4.0"

func main() {
	plain := flag.Bool("plain", false, "print the page to stdout and exit")
	reduced := flag.Bool("reduced-motion", false, "skip the reveal transition")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("jaxpy-tour " + version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *reduced {
		cfg.UI.ReducedMotion = true
	}

	log, closeLog := logging.Open(cfg.Log.Path, cfg.Log.Level)
	defer closeLog()

	p := page.New()
	if err := p.Render(page.RenderOptions{
		Width: cfg.UI.Width,
		Style: cfg.UI.GlamourStyle,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	// Without a terminal there is no viewport to intersect with; print
	// the whole page instead of failing.
	if *plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(tui.RenderStatic(p, cfg.UI.Width))
		return
	}

	log.Info("starting tour", "version", version, "width", cfg.UI.Width)
	prog := tea.NewProgram(tui.New(cfg, log, p), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// Command portfolio-term browses the portfolio in a terminal using the same
// radial menu as the web site.
//
//	portfolio-term [-log file]
//	portfolio-term layout [-width W -height H -items N -units cells|px -corner C]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/portfolio/pkg/logger"
	"github.com/Zachkp/portfolio/pkg/radial"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "layout" {
		if err := runLayout(os.Args[2:], os.Stdout); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return
			}
			fmt.Fprintf(os.Stderr, "portfolio-term layout: %v\n", err)
			os.Exit(2)
		}
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logPath := flag.String("log", "", "append logs to this file")
	flag.Parse()

	// the screen owns stdout, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := logger.New(out, "portfolio-term", version, os.Getenv(logger.EnvVarLogLevel))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	cfg := termConfig()
	if v := os.Getenv("NAV_ACCENT"); v != "" {
		cfg.AccentColor = v
	}
	if v := os.Getenv("NAV_CORNER"); v != "" {
		cfg.Corner = radial.ParseCorner(v)
	}

	h := newHost(screen, cfg, log)
	defer h.close()

	w, ht := screen.Size()
	log.Info("terminal host started", "width", w, "height", ht, "corner", cfg.Corner.String())
	h.run()
	log.Info("terminal host stopped", "trail", h.router.trail)
	return nil
}

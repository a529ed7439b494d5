// duel-chess is a two-player chess game for the terminal, a full-screen
// terminal UI, or remote play over websockets.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/duel-chess/internal/config"
	"github.com/lgbarn/duel-chess/internal/server"
	"github.com/lgbarn/duel-chess/internal/tui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("duel-chess version %s\n", programVersion)
		os.Exit(0)
	}

	logw, closeLog := setupLogFile()
	defer closeLog()

	cfg, err := buildConfig(os.Stdin, os.Stdout, logw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(2)
	}

	closeHistory := setupHistoryFile(cfg)
	defer closeHistory()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeHistory()
		closeLog()
		os.Exit(1)
	}
}

// run starts the configured front end.
func run(cfg *config.Config) error {
	switch cfg.Mode {
	case config.TUIMode:
		return tui.Run(cfg)
	case config.ServeMode:
		return serve(cfg)
	default:
		c, err := newConsole(cfg)
		if err != nil {
			return err
		}
		return c.run()
	}
}

// serve runs the websocket server until interrupted.
func serve(cfg *config.Config) error {
	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Close(shutdownCtx) //nolint:errcheck,gosec // exiting anyway
	}()

	return srv.Listen()
}

// setupLogFile opens the log file named on the command line and returns
// it with a function that closes it. Without one, diagnostics go to stderr.
func setupLogFile() (io.Writer, func()) {
	var file *os.File
	var err error

	switch {
	case *logFile != "":
		file, err = os.Create(*logFile)
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	default:
		return os.Stderr, func() {}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	return file, func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

// setupHistoryFile creates the -history file for a console game and
// returns a function that closes it.
func setupHistoryFile(cfg *config.Config) func() {
	if *historyFile == "" {
		return func() {}
	}
	if cfg.Mode != config.ConsoleMode {
		cfg.Logf(1, "-history is only kept for console games; ignoring it")
		return func() {}
	}

	file, err := os.Create(*historyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history file: %v\n", err)
		os.Exit(1)
	}
	cfg.History = file

	return func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: duel-chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game. Enter moves as \"e2 e4\".\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRule sets (-rules):\n")
	fmt.Fprintf(os.Stderr, "  literal   bishops jump, pawns double-step anywhere, king capture not played (default)\n")
	fmt.Fprintf(os.Stderr, "  standard  all three corrected\n")
}

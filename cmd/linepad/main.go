package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/linepad"
	"github.com/iw2rmb/linepad/editor"
	"github.com/iw2rmb/linepad/internal/app"
	"github.com/iw2rmb/linepad/term"
)

var errLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

type options struct {
	backend string
	logPath string
	clip    bool
	version bool
	path    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("linepad", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.backend, "backend", "ansi", "terminal backend: ansi or tcell")
	fs.StringVar(&opts.logPath, "log", "", "append diagnostics to this file")
	fs.BoolVar(&opts.clip, "clip", false, "truncate lines at the right edge")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: linepad [flags] [file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 1 {
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	if opts.backend != "ansi" && opts.backend != "tcell" {
		return opts, fmt.Errorf("unknown backend %q", opts.backend)
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		report(err)
		os.Exit(2)
	}
	if opts.version {
		fmt.Println(linepad.VersionTag())
		return
	}

	logger, closeLog, err := openLog(opts.logPath)
	if err != nil {
		report(err)
		os.Exit(1)
	}
	err = edit(opts, logger)
	if err != nil {
		logger.Printf("exit: %v", err)
	}
	closeLog()
	if err != nil {
		report(err)
		os.Exit(1)
	}
}

// openLog sends diagnostics to a file, never to the terminal being edited.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := tea.LogToFile(path, "linepad")
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.Default(), func() { _ = f.Close() }, nil
}

func edit(opts options, logger *log.Logger) error {
	if opts.backend == "tcell" {
		return editTcell(opts, logger)
	}
	return editANSI(opts, logger)
}

func editANSI(opts options, logger *log.Logger) (err error) {
	t, err := term.OpenANSI(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := t.Close(); err == nil {
			err = cerr
		}
	}()

	d, err := newDispatcher(t, opts, logger)
	if err != nil {
		return err
	}
	if err := app.RunTea(d, os.Stdin, os.Stdout); err != nil {
		return err
	}
	return lastSave(d)
}

func editTcell(opts options, logger *log.Logger) (err error) {
	t, err := term.OpenTcell()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := t.Close(); err == nil {
			err = cerr
		}
	}()

	d, err := newDispatcher(t, opts, logger)
	if err != nil {
		return err
	}
	if err := app.Run(d, t); err != nil {
		return err
	}
	return lastSave(d)
}

func newDispatcher(t term.Terminal, opts options, logger *log.Logger) (*app.Dispatcher, error) {
	s := editor.New(t, editor.Config{Logger: logger, Clip: opts.clip})
	var err error
	if opts.path != "" {
		err = s.Load(opts.path)
	} else {
		err = s.RepaintWindowFrom(0)
	}
	if err != nil {
		return nil, err
	}
	return app.NewDispatcher(s, editor.DefaultKeyMap(), logger), nil
}

func lastSave(d *app.Dispatcher) error {
	if err := d.SaveErr(); err != nil {
		return fmt.Errorf("last save failed: %w", err)
	}
	return nil
}

func report(err error) {
	fmt.Fprintln(os.Stderr, errLabel.Render("linepad:")+" "+err.Error())
}

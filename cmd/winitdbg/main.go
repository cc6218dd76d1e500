package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/richerfu/winit/ability/sim"
	"github.com/richerfu/winit/ability/xhost"
	"github.com/richerfu/winit/event"
	"github.com/richerfu/winit/eventloop"
	"github.com/richerfu/winit/internal/eventview"
	"github.com/richerfu/winit/window"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "replay":
		os.Exit(runReplay(os.Args[2:]))
	case "trace":
		os.Exit(runTrace(os.Args[2:]))
	case "xhost":
		os.Exit(runXhost(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winitdbg <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  replay    Run a scripted native event stream and print the dispatched events")
	fmt.Fprintln(w, "  trace     Run a scripted stream and open the interactive event inspector")
	fmt.Fprintln(w, "  xhost     Drive the event loop from a live X11 window")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winitdbg <command> --help' for command options.")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// recorder collects every dispatched callback as a display record. It is
// only touched from the dispatch goroutine.
type recorder struct {
	records []eventview.Record
	logger  *slog.Logger
}

func (r *recorder) add(rec eventview.Record) {
	r.records = append(r.records, rec)
	if r.logger != nil {
		r.logger.Info("dispatch", "event", rec.Name, "detail", rec.Detail)
	}
}

func (r *recorder) NewEvents(loop *eventloop.ActiveEventLoop, cause event.StartCause) {
	if r.logger != nil {
		r.logger.Debug("new events", "cause", cause)
	}
}

func (r *recorder) WindowEvent(loop *eventloop.ActiveEventLoop, id window.ID, ev event.WindowEvent) {
	r.add(eventview.Describe(len(r.records), ev))
}

func (r *recorder) CanCreateSurfaces(loop *eventloop.ActiveEventLoop) {
	r.add(eventview.Lifecycle(len(r.records), "can-create-surfaces"))
}

func (r *recorder) DestroySurfaces(loop *eventloop.ActiveEventLoop) {
	r.add(eventview.Lifecycle(len(r.records), "destroy-surfaces"))
}

func (r *recorder) Resumed(loop *eventloop.ActiveEventLoop) {
	r.add(eventview.Lifecycle(len(r.records), "resumed"))
}

func (r *recorder) Suspended(loop *eventloop.ActiveEventLoop) {
	r.add(eventview.Lifecycle(len(r.records), "suspended"))
}

func (r *recorder) MemoryWarning(loop *eventloop.ActiveEventLoop) {
	r.add(eventview.Lifecycle(len(r.records), "memory-warning"))
}

// runScript plays the script through a simulated app and returns the
// recorded callback stream.
func runScript(path string, logger *slog.Logger, echo bool) ([]eventview.Record, error) {
	script, err := sim.LoadScript(path)
	if err != nil {
		return nil, err
	}

	app := sim.New()
	if err := script.Play(app); err != nil {
		return nil, err
	}

	loop, err := eventloop.New(eventloop.Config{App: app, Logger: logger})
	if err != nil {
		return nil, err
	}

	rec := &recorder{}
	if echo {
		rec.logger = logger
	}
	if err := loop.RunApp(rec); err != nil {
		return nil, err
	}
	return rec.records, nil
}

func runReplay(args []string) int {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	script := fs.String("script", "", "Script file path (YAML)")
	verbose := fs.Bool("v", false, "Enable debug logging")

	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stderr, "Usage: winitdbg replay --script PATH [-v]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Plays a scripted native event stream through a simulated runtime and")
		fmt.Fprintln(os.Stderr, "prints every dispatched callback, one per line.")
		return 0
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *script == "" {
		fmt.Fprintln(os.Stderr, "replay requires --script")
		return 2
	}

	logger := newLogger(*verbose)
	records, err := runScript(*script, logger, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay failed: %v\n", err)
		return 1
	}

	for _, r := range records {
		fmt.Println(r.Line())
	}
	fmt.Printf("%d events dispatched\n", len(records))
	return 0
}

func runTrace(args []string) int {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	script := fs.String("script", "", "Script file path (YAML)")
	verbose := fs.Bool("v", false, "Enable debug logging")

	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stderr, "Usage: winitdbg trace --script PATH [-v]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Plays a scripted native event stream, then opens an interactive")
		fmt.Fprintln(os.Stderr, "inspector over the dispatched events. Falls back to a plain dump when")
		fmt.Fprintln(os.Stderr, "stdout is not a terminal.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  j/k, ↑/↓  Navigate events")
		fmt.Fprintln(os.Stderr, "  g/G       Jump to first/last event")
		fmt.Fprintln(os.Stderr, "  q, Esc    Quit")
		return 0
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *script == "" {
		fmt.Fprintln(os.Stderr, "trace requires --script")
		return 2
	}

	logger := newLogger(*verbose)
	records, err := runScript(*script, logger, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace failed: %v\n", err)
		return 1
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, r := range records {
			fmt.Println(r.Line())
		}
		return 0
	}

	if err := eventview.Run("winitdbg trace", records); err != nil {
		fmt.Fprintf(os.Stderr, "trace failed: %v\n", err)
		return 1
	}
	return 0
}

func runXhost(args []string) int {
	fs := flag.NewFlagSet("xhost", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	width := fs.Uint("width", 540, "Window width in pixels")
	height := fs.Uint("height", 960, "Window height in pixels")
	title := fs.String("title", "winitdbg", "Window title")
	verbose := fs.Bool("v", false, "Enable debug logging")

	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stderr, "Usage: winitdbg xhost [--width N] [--height N] [--title STR] [-v]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Opens an X11 window and drives the event loop from it. The left mouse")
		fmt.Fprintln(os.Stderr, "button emulates touch; every dispatched callback is logged to stderr.")
		fmt.Fprintln(os.Stderr, "Close the window to exit.")
		return 0
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(*verbose)
	host, err := xhost.New(xhost.Config{
		Width:  uint32(*width),
		Height: uint32(*height),
		Title:  *title,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "xhost failed: %v\n", err)
		return 1
	}

	loop, err := eventloop.New(eventloop.Config{App: host, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "xhost failed: %v\n", err)
		return 1
	}
	if err := loop.RunApp(&recorder{logger: logger}); err != nil {
		fmt.Fprintf(os.Stderr, "xhost failed: %v\n", err)
		return 1
	}
	return 0
}

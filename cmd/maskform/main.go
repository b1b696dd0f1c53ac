// Package main is the entry point for the maskform demo form runner.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/maskform/internal/formdef"
	"github.com/dshills/maskform/internal/widget"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	def, err := loadForm(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	form, err := widget.NewForm(def)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := widget.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Reload the form when its file changes on disk.
	var mu sync.Mutex
	if opts.FormPath != "" {
		w, err := formdef.NewWatcher(opts.FormPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", opts.FormPath, err)
			return 1
		}
		defer w.Close()

		go func() {
			for def := range w.Forms() {
				next, err := widget.NewForm(def)
				if err != nil {
					continue
				}
				mu.Lock()
				form = next
				mu.Unlock()
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}()
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	}()

	theme := widget.DefaultTheme()
	for {
		mu.Lock()
		f := form
		mu.Unlock()
		f.Draw(screen, theme)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return 0
			}
			f.HandleKey(ev)
		case *tcell.EventResize, *tcell.EventInterrupt:
			// Redraw on the next loop pass.
		case nil:
			return 0
		}
	}
}

// Options holds the command-line configuration.
type Options struct {
	FormPath string
	Locale   string
}

func parseFlags() Options {
	var opts Options
	var showVersion bool

	flag.StringVar(&opts.FormPath, "form", "", "Path to a form file (.yaml, .yml, or .toml)")
	flag.StringVar(&opts.FormPath, "f", "", "Path to a form file (shorthand)")
	flag.StringVar(&opts.Locale, "locale", "", "Default locale for fields without one (e.g. de-DE)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Maskform - masked text input forms for the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: maskform [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  maskform                    Run the built-in demo form\n")
		fmt.Fprintf(os.Stderr, "  maskform -f invoice.yaml    Run a form file, reloading on change\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Maskform %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}

func loadForm(opts Options) (*formdef.Form, error) {
	if opts.FormPath != "" {
		l, err := formdef.ForPath(opts.FormPath)
		if err != nil {
			return nil, err
		}
		return l.LoadFrom(opts.FormPath)
	}
	return builtinForm(opts.Locale), nil
}

// builtinForm is the demo shown when no form file is given.
func builtinForm(locale string) *formdef.Form {
	return &formdef.Form{
		Title: "Maskform demo",
		Fields: []formdef.FieldDef{
			{Name: "amount", Label: "Amount", Mask: `\$ ###,##0.0##`, Locale: locale},
			{Name: "date", Label: "Date", Mask: `99\/99\/9999`, Locale: locale},
			{Name: "phone", Label: "Phone", Mask: `(###) 000\-0000`, Locale: locale},
			{Name: "plate", Label: "Plate", Mask: `lll\-0000`, Locale: locale},
			{Name: "temp", Label: "Temperature", Mask: `###0.0\°-`, Locale: locale},
		},
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Mavwarf/ctmicons/internal/config"
	"github.com/Mavwarf/ctmicons/internal/history"
	"github.com/Mavwarf/ctmicons/internal/icon"
	"github.com/Mavwarf/ctmicons/internal/mqtt"
	"github.com/Mavwarf/ctmicons/internal/paths"
	"github.com/Mavwarf/ctmicons/internal/preview"
	"github.com/Mavwarf/ctmicons/internal/runner"
)

const (
	defaultPreviewSize  = 64
	defaultHistoryCount = 10
)

// shouldRecordHistory returns true if renders should be written to the
// history database. The --history flag forces it on; otherwise the
// config's "history" option decides.
func shouldRecordHistory(flag bool, cfg config.Config) bool {
	return flag || cfg.Options.History
}

// newRenderer builds the icon renderer, wiring font diagnostics to stderr
// when verbose is set.
func newRenderer(cfg config.Config, verbose bool) *icon.Renderer {
	r := icon.NewRenderer(cfg.Options)
	if verbose {
		r.Debug = os.Stderr
	}
	return r
}

// newRunner assembles a Runner from config. The returned store, if any,
// must be closed by the caller.
func newRunner(cfg config.Config, opts cliOptions, out io.Writer) (*runner.Runner, history.Store) {
	r := &runner.Runner{
		Renderer: newRenderer(cfg, opts.verbose),
		Out:      out,
		Err:      os.Stderr,
	}

	var store history.Store
	if shouldRecordHistory(opts.history, cfg) {
		s, err := history.NewSQLiteStore(paths.HistoryPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "history: %v\n", err)
		} else {
			store = s
			r.Store = s
		}
	}
	if cfg.Options.MQTT.Enabled() {
		r.Publisher = mqtt.Publisher{Opts: cfg.Options.MQTT}
	}
	return r, store
}

func generateCmd(opts cliOptions) {
	cfg := loadConfig(opts)
	r, store := newRunner(cfg, opts, os.Stdout)
	if store != nil {
		defer store.Close()
	}

	if _, err := r.Execute(cfg.Icons); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}

func previewCmd(opts cliOptions, args []string) {
	size := defaultPreviewSize
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: size must be a positive integer\n")
			os.Exit(1)
		}
		size = n
	}

	cfg := loadConfig(opts)
	img, h := newRenderer(cfg, opts.verbose).Image(size)
	width := preview.TermWidth(int(os.Stdout.Fd()))
	if err := preview.Render(os.Stdout, img, width); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%dx%d  font=%s@%d\n", size, size, h.Source, h.Size)
}

func listCmd(opts cliOptions) {
	cfg := loadConfig(opts)
	writeIconList(os.Stdout, cfg.Icons)
}

func writeIconList(w io.Writer, specs []config.IconSpec) {
	for _, s := range specs {
		dim := fmt.Sprintf("%dx%d", s.Size, s.Size)
		fmt.Fprintf(w, "  %-30s %s\n", s.Path, dim)
	}
}

func historyCmd(opts cliOptions, args []string) {
	if len(args) > 0 && args[0] == "clear" {
		historyClear()
		return
	}

	count := defaultHistoryCount
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: count must be a positive integer\n")
			os.Exit(1)
		}
		count = n
	}

	path := paths.HistoryPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No history found. Enable it with --history or \"history\": true in config.")
		return
	}

	s, err := history.NewSQLiteStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	entries, err := s.Entries(count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("History is empty.")
		return
	}
	writeHistory(os.Stdout, entries)
}

func historyClear() {
	path := paths.HistoryPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No history found.")
		return
	}
	s, err := history.NewSQLiteStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()
	if err := s.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("History cleared.")
}

// writeHistory prints one line per entry, newest first.
func writeHistory(w io.Writer, entries []history.Entry) {
	for _, e := range entries {
		sum := e.SHA256
		if len(sum) > 12 {
			sum = sum[:12]
		}
		fmt.Fprintf(w, "%s  %-30s %4dx%-4d %s  font=%s@%d  %d bytes  sha256=%s\n",
			e.Time.Format("2006-01-02 15:04:05"), e.Path, e.Size, e.Size, e.Format,
			e.FontSource, e.FontSize, e.Bytes, sum)
	}
}

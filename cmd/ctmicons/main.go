package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Mavwarf/ctmicons/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// cliOptions holds the global flags shared by all commands.
type cliOptions struct {
	configPath string
	history    bool
	verbose    bool
}

func main() {
	opts, args, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmd := "generate"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "generate":
		generateCmd(opts)
	case "preview":
		previewCmd(opts, args)
	case "list", "-l", "--list":
		listCmd(opts)
	case "history":
		historyCmd(opts, args)
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", cmd)
		fmt.Fprintf(os.Stderr, "Run 'ctmicons help' for usage.\n")
		os.Exit(1)
	}
}

// parseArgs extracts global flags from args and returns the remaining
// positional arguments in order.
func parseArgs(args []string) (cliOptions, []string, error) {
	var opts cliOptions
	var rest []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--config requires a file path")
			}
			opts.configPath = args[i+1]
			i++
		case "--history":
			opts.history = true
		case "--verbose":
			opts.verbose = true
		default:
			rest = append(rest, args[i])
		}
	}
	return opts, rest, nil
}

// loadConfig loads the config or exits.
func loadConfig(opts cliOptions) config.Config {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func printVersion() {
	fmt.Printf("ctmicons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("ctmicons %s - Generate CTM placeholder icons\n", version)
	fmt.Println(`
Usage:
  ctmicons [options] [command]

Options:
  --config, -c <path>    Path to ctmicons-config.json
  --history              Record renders in the history database
  --verbose              Report font lookup failures

Commands:
  generate               Render all configured icons (default)
  preview [size]         Show an icon in the terminal (default size 64)
  list, -l, --list       List configured icons
  history [count]        Show recent renders (default 10)
  history clear          Delete all history
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>                          (explicit)
  2. ctmicons-config.json next to binary      (portable)
  3. ~/.config/ctmicons/ctmicons-config.json  (user default)
  4. built-in defaults

Default icons (the assets/ directory must exist):
  assets/icon.png           1024x1024
  assets/adaptive-icon.png  1024x1024
  assets/splash-icon.png    512x512
  assets/favicon.png        32x32`)
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/rlang/internal/config"
)

const usage = `usage: rlang [flags] file...
       rlang [flags] repl

Checks each file in a fresh environment and prints "ok <file>" or the first
error. Without files, the files listed in rlang.yaml are checked.

flags:
`

// Run is the rlang command line.
func Run() {
	os.Exit(Main(os.Args[1:], os.Stdout, os.Stderr))
}

// Main runs the command line with explicit arguments and streams and
// returns the exit status.
func Main(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rlang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "project file (default: rlang.yaml found from the working directory up)")
	verbose := fs.Bool("v", false, "log progress")
	color := fs.String("color", "", "colorize errors: auto, always or never")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "rlang: %s\n", err)
		return 2
	}
	if *verbose {
		cfg.Verbose = true
	}
	switch *color {
	case "":
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
		cfg.Color = *color
	default:
		fmt.Fprintf(stderr, "rlang: invalid -color %q\n", *color)
		return 2
	}

	r := NewRunner(cfg, stdout, stderr)
	rest := fs.Args()
	if len(rest) == 1 && rest[0] == "repl" {
		return r.REPL()
	}
	files := rest
	if len(files) == 0 {
		files = cfg.Files
	}
	if len(files) == 0 {
		fs.Usage()
		return 2
	}
	return r.CheckFiles(files)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.FindConfig(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			return config.Default(), nil
		}
		path = found
	}
	return config.LoadConfig(path)
}

// useColor applies the color mode to out; auto means "out is a terminal".
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if config.IsTestMode {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

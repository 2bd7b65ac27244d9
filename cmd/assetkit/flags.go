package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	dir     string
	quiet   bool
	verbose bool
}

// resolveFlags holds flags for the resolve command.
type resolveFlags struct {
	common commonFlags
	strict bool
}

// catFlags holds flags for the cat command.
type catFlags struct {
	common commonFlags
	output string
}

// listFlags holds flags for the list command.
type listFlags struct {
	common commonFlags
	files  bool
	format string
}

// verifyFlags holds flags for the verify command.
type verifyFlags struct {
	common  commonFlags
	workers int
}

// galleryFlags holds flags for the gallery command.
type galleryFlags struct {
	common  commonFlags
	output  string
	title   string
	date    string
	columns int
	source  bool
	style   string
	theme   string
	timeout string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.dir, "dir", "d", "", "directory layered over the collection")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// newFlagSet creates a silent FlagSet: errors are returned, never printed.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

func resolveFlagSet(f *resolveFlags) *flag.FlagSet {
	fs := newFlagSet("resolve")
	fs.BoolVar(&f.strict, "strict", false, "treat names as required (error-level log on miss)")
	addCommonFlags(fs, &f.common)
	return fs
}

func catFlagSet(f *catFlags) *flag.FlagSet {
	fs := newFlagSet("cat")
	fs.StringVarP(&f.output, "output", "o", "", "write to file instead of stdout")
	addCommonFlags(fs, &f.common)
	return fs
}

func listFlagSet(f *listFlags) *flag.FlagSet {
	fs := newFlagSet("list")
	fs.BoolVar(&f.files, "files", false, "list file names instead of identifiers")
	fs.StringVarP(&f.format, "format", "f", formatText, "output format: text, json, yaml")
	addCommonFlags(fs, &f.common)
	return fs
}

func verifyFlagSet(f *verifyFlags) *flag.FlagSet {
	fs := newFlagSet("verify")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel checks (0 = auto)")
	addCommonFlags(fs, &f.common)
	return fs
}

func galleryFlagSet(f *galleryFlags) *flag.FlagSet {
	fs := newFlagSet("gallery")
	fs.StringVarP(&f.output, "output", "o", "", "output file: .md, .html or .pdf (default: HTML to stdout)")
	fs.StringVar(&f.title, "title", "", "gallery title (default: collection name)")
	fs.StringVar(&f.date, "date", "", "date under the title: auto, auto:FORMAT or text")
	fs.IntVar(&f.columns, "columns", 0, "table columns (1-12, default: 4)")
	fs.BoolVar(&f.source, "source", false, "append highlighted SVG sources")
	fs.StringVar(&f.style, "style", "", "syntax highlighting style (default: github)")
	fs.StringVar(&f.theme, "theme", "", "page stylesheet: default, dark")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)
	return fs
}

// parseFlags parses args with fs and wraps parse errors as usage errors.
func parseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	return fs.Args(), nil
}

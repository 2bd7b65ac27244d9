package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetkit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  resolve     Print the canonical identifier of asset names")
	fmt.Fprintln(w, "  cat         Write the bytes of an asset")
	fmt.Fprintln(w, "  list        List collections or the assets of one collection")
	fmt.Fprintln(w, "  verify      Check that every asset resolves and opens")
	fmt.Fprintln(w, "  gallery     Render a collection catalog to Markdown, HTML or PDF")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Collections: fonts, svg, uiicons")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'assetkit help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags every asset command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (env: ASSETKIT_CONFIG)")
	fmt.Fprintln(w, "  -d, --dir <path>          Directory layered over the collection")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
}

func printResolveUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetkit resolve <collection> <name>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the canonical identifier of each name, one per line.")
	fmt.Fprintln(w, "Names may be file names (Cairo-Bold.ttf), bare names (Cairo-Bold),")
	fmt.Fprintln(w, "folder paths (Cairo/Cairo-Bold.ttf, Cairo\\Cairo-Bold) or identifiers.")
	fmt.Fprintln(w, "Matching ignores case. Exits 5 if any name does not resolve.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --strict              Treat names as required")
	printCommonFlags(w)
}

func printCatUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetkit cat <collection> <name> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the bytes of an asset to stdout or a file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file")
	printCommonFlags(w)
}

func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetkit list [collection] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a collection, list the collections with their asset counts.")
	fmt.Fprintln(w, "With one, list its canonical identifiers in discovery order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --files               List distinct file names instead")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, json, yaml")
	printCommonFlags(w)
}

func printVerifyUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetkit verify [collection...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check every asset: its identifier resolves to itself, its file name")
	fmt.Fprintln(w, "resolves to an asset of that name, and its bytes can be read.")
	fmt.Fprintln(w, "Checks all collections when none is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel checks (0 = auto)")
	printCommonFlags(w)
}

func printGalleryUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetkit gallery <collection> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a catalog of the collection. Icons are previewed inline.")
	fmt.Fprintln(w, "The output extension selects the format: .md, .html or .pdf.")
	fmt.Fprintln(w, "Without --output, HTML is written to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file")
	fmt.Fprintln(w, "      --title <s>           Gallery title")
	fmt.Fprintln(w, "      --date <s>            Date line: auto, auto:DD/MM/YYYY, auto:long or text")
	fmt.Fprintln(w, "      --columns <n>         Table columns (1-12)")
	fmt.Fprintln(w, "      --source              Append highlighted SVG sources")
	fmt.Fprintln(w, "      --style <s>           Syntax highlighting style (default: github)")
	fmt.Fprintln(w, "      --theme <s>           Page stylesheet: default, dark")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (default: 30s)")
	printCommonFlags(w)
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "resolve":
		printResolveUsage(env.Stdout)
	case "cat":
		printCatUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "verify":
		printVerifyUsage(env.Stdout)
	case "gallery":
		printGalleryUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: assetkit version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: assetkit help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	assetkit "github.com/alnah/go-assetkit"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name            string
	Desc            string
	Flags           []flagDef
	TakesCollection bool // first argument is a collection name
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"format": {Values: []string{formatText, formatJSON, formatYAML}},
	"theme":  {Values: []string{"default", "dark"}},
	"config": {FileGlob: "*.yaml,*.yml"},
	"output": {FileGlob: "*"},
	"dir":    {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet,
// enriched with flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the FlagSets the commands parse with.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "resolve", Desc: "Print the canonical identifier of asset names", Flags: extractFlagsFromFlagSet(resolveFlagSet(&resolveFlags{})), TakesCollection: true},
		{Name: "cat", Desc: "Write the bytes of an asset", Flags: extractFlagsFromFlagSet(catFlagSet(&catFlags{})), TakesCollection: true},
		{Name: "list", Desc: "List collections or assets", Flags: extractFlagsFromFlagSet(listFlagSet(&listFlags{})), TakesCollection: true},
		{Name: "verify", Desc: "Check that every asset resolves and opens", Flags: extractFlagsFromFlagSet(verifyFlagSet(&verifyFlags{})), TakesCollection: true},
		{Name: "gallery", Desc: "Render a collection catalog", Flags: extractFlagsFromFlagSet(galleryFlagSet(&galleryFlags{})), TakesCollection: true},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// completionCollections lists the collection names offered by completion.
func completionCollections() []string {
	return []string{assetkit.CollectionFonts, assetkit.CollectionSVG, assetkit.CollectionUIIcons}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	case ShellPowerShell:
		script = generatePowerShell(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

func longFlags(flags []flagDef) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		out = append(out, "--"+f.Long)
		if f.Short != "" {
			out = append(out, "-"+f.Short)
		}
	}
	return out
}

func generateBash(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for assetkit\n")
	b.WriteString("_assetkit_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	fmt.Fprintf(&b, "    if [[ ${COMP_CWORD} -eq 1 ]]; then\n        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n        return\n    fi\n\n",
		strings.Join(commandNames(cmds), " "))

	b.WriteString("    case \"$prev\" in\n")
	for _, name := range []string{"format", "theme"} {
		fmt.Fprintf(&b, "        --%s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n",
			name, strings.Join(flagCompletionMeta[name].Values, " "))
	}
	b.WriteString("        -d|--dir) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n")
	b.WriteString("        -c|--config|-o|--output) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n")
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		switch {
		case c.Name == "completion":
			b.WriteString("        completion) COMPREPLY=($(compgen -W \"bash zsh fish powershell\" -- \"$cur\")) ;;\n")
		case c.Name == "help":
			fmt.Fprintf(&b, "        help) COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n", strings.Join(commandNames(cmds), " "))
		case len(c.Flags) > 0:
			words := append(longFlags(c.Flags), completionCollections()...)
			fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n", c.Name, strings.Join(words, " "))
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _assetkit_completions assetkit\n")
	return b.String()
}

func generateZsh(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef assetkit\n\n")
	b.WriteString("_assetkit() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, c.Desc)
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$words[2]\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n            _arguments \\\n", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "                '--%s[%s]%s' \\\n", f.Long, zshEscape(f.Desc), zshAction(f))
		}
		fmt.Fprintf(&b, "                '1:collection:(%s)'\n            ;;\n", strings.Join(completionCollections(), " "))
	}
	b.WriteString("        completion)\n            _arguments '1:shell:(bash zsh fish powershell)'\n            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_assetkit \"$@\"\n")
	return b.String()
}

func zshEscape(s string) string {
	r := strings.NewReplacer("[", `\[`, "]", `\]`, "'", `'\''`, ":", `\:`)
	return r.Replace(s)
}

func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagDir:
		return ":directory:_files -/"
	case flagFile:
		return ":file:_files"
	default:
		return ":" + f.Long + ":"
	}
}

func generateFish(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for assetkit\n")
	b.WriteString("function __fish_assetkit_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_assetkit_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c assetkit -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c assetkit -n __fish_assetkit_needs_command -a %s -d %q\n", c.Name, c.Desc)
	}
	for _, c := range cmds {
		if c.TakesCollection {
			fmt.Fprintf(&b, "complete -c assetkit -n '__fish_assetkit_using_command %s' -a %q\n",
				c.Name, strings.Join(completionCollections(), " "))
		}
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c assetkit -n '__fish_assetkit_using_command %s' -l %s", c.Name, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, " -x -a %q", strings.Join(f.Values, " "))
			case flagFile, flagDir:
				b.WriteString(" -r -F")
			case flagString, flagInt:
				b.WriteString(" -x")
			}
			fmt.Fprintf(&b, " -d %q\n", f.Desc)
		}
	}
	b.WriteString("complete -c assetkit -n '__fish_assetkit_using_command completion' -a 'bash zsh fish powershell'\n")
	return b.String()
}

func generatePowerShell(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# PowerShell completion for assetkit\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName assetkit -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n")
	b.WriteString("    $words = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	b.WriteString("    $candidates = @()\n")
	b.WriteString("    if ($words.Count -le 2 -and -not $wordToComplete.StartsWith('-')) {\n")
	fmt.Fprintf(&b, "        $candidates = @(%s)\n", psList(commandNames(cmds)))
	b.WriteString("    } else {\n")
	b.WriteString("        switch ($words[1]) {\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		words := append(longFlags(c.Flags), completionCollections()...)
		fmt.Fprintf(&b, "            '%s' { $candidates = @(%s) }\n", c.Name, psList(words))
	}
	b.WriteString("            'completion' { $candidates = @('bash', 'zsh', 'fish', 'powershell') }\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

func psList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetkit completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(assetkit completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(assetkit completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    assetkit completion fish > ~/.config/fish/completions/assetkit.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    assetkit completion powershell | Out-String | Invoke-Expression")
}

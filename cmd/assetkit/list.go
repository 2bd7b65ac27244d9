package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	assetkit "github.com/alnah/go-assetkit"
	"github.com/alnah/go-assetkit/internal/yamlutil"
)

// Output formats of the list command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// collectionSummary describes one collection in `assetkit list`.
type collectionSummary struct {
	Name       string   `json:"name" yaml:"name"`
	Prefix     string   `json:"prefix" yaml:"prefix"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	Assets     int      `json:"assets" yaml:"assets"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// runList lists the collections, or the assets of one collection.
func runList(args []string, env *Environment) error {
	f := &listFlags{}
	positional, err := parseFlags(listFlagSet(f), args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: list takes at most one collection", ErrUsage)
	}

	format := strings.ToLower(f.format)
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: %q (supported: text, json, yaml)", ErrInvalidFormat, f.format)
	}

	var name string
	if len(positional) == 1 {
		name = positional[0]
	}

	s, err := openSession(f.common, name, env)
	if err != nil {
		return err
	}

	if name == "" {
		return writeSummaries(env.Stdout, summarize(s.registry), format)
	}

	c, err := s.collection(name)
	if err != nil {
		return err
	}

	names := c.ResourceNames()
	if f.files {
		names = c.FileNames()
	}
	return writeNames(env.Stdout, names, format)
}

func summarize(reg *assetkit.Registry) []collectionSummary {
	names := reg.Names()
	out := make([]collectionSummary, 0, len(names))
	for _, name := range names {
		c, err := reg.Collection(name)
		if err != nil {
			continue
		}
		sum := collectionSummary{
			Name:       c.Name(),
			Prefix:     c.Prefix(),
			Extensions: c.Extensions(),
			Assets:     c.Len(),
		}
		if err := c.Err(); err != nil {
			sum.Error = err.Error()
		}
		out = append(out, sum)
	}
	return out
}

func writeSummaries(w io.Writer, sums []collectionSummary, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, sums)
	case formatYAML:
		return writeYAML(w, sums)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLLECTION\tPREFIX\tEXTENSIONS\tASSETS")
	for _, s := range sums {
		assets := fmt.Sprint(s.Assets)
		if s.Error != "" {
			assets += " (error)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.Prefix, strings.Join(s.Extensions, ","), assets)
	}
	return tw.Flush()
}

func writeNames(w io.Writer, names []string, format string) error {
	if names == nil {
		names = []string{}
	}
	switch format {
	case formatJSON:
		return writeJSON(w, names)
	case formatYAML:
		return writeYAML(w, names)
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	data, err := yamlutil.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/overload_ive_go/overload"
)

// table is the document list prints and check --declare reads back.
type table struct {
	Registry    string          `yaml:"registry,omitempty"`
	Fingerprint string          `yaml:"fingerprint,omitempty"`
	Entries     []overload.Decl `yaml:"entries"`
}

func formatFingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}

func writeTable(w io.Writer, format string, t table) error {
	switch format {
	case formatText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CAPABILITY\tTIER\tKIND\tPATTERN\tOWNER")
		for _, d := range t.Entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Capability, d.Tier, d.Kind, d.Describe, d.Owner)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "fingerprint: %s\n", t.Fingerprint)
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatText, formatYAML)
	}
}

// readDecls loads the entries of a table document. Every entry needs an owner.
// A missing pattern, or the wildcard pattern, declares a wildcard; any other
// pattern is an interface unless its kind says otherwise.
func readDecls(path string) ([]overload.Decl, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, d := range t.Entries {
		if d.Owner == "" || d.Capability == "" {
			return nil, fmt.Errorf("%s: entry %d needs a capability and an owner", path, i)
		}
		if d.Pattern == "" || d.Pattern == overload.WildcardPattern {
			t.Entries[i].Pattern = overload.WildcardPattern
			t.Entries[i].Kind = overload.KindWildcard
		}
		if d.Describe == "" {
			t.Entries[i].Describe = t.Entries[i].Pattern
		}
	}
	return t.Entries, nil
}

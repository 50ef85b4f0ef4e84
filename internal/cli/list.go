package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/parameterx"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	SourceOptions
}

// ListEntry is one parameter in a ListResult.
type ListEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// ListResult is the payload of list, entries in key order.
type ListResult struct {
	Count   int         `json:"count"`
	Entries []ListEntry `json:"entries"`
}

func (r ListResult) String() string {
	if len(r.Entries) == 0 {
		return "(no parameters)"
	}
	lines := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		lines[i] = fmt.Sprintf("%s = %s", e.Key, e.Value)
	}
	return strings.Join(lines, "\n")
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every parameter in key order",
		Long: `Build a parameter store and print every entry in key order.

Parameters from --file are applied first, then every --set in order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	addSourceFlags(cmd, &opts.SourceOptions)

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	p, err := buildParams(&opts.SourceOptions, formatter)
	if err != nil {
		return err
	}

	return formatter.Success(listEntries(p))
}

func listEntries(p *parameterx.Params) ListResult {
	result := ListResult{Entries: make([]ListEntry, 0, p.Len())}
	for key := range p.Keys() {
		value, _ := p.GetString(key)
		typ, _ := p.TypeName(key)
		result.Entries = append(result.Entries, ListEntry{Key: key, Value: value, Type: typ})
	}
	result.Count = len(result.Entries)
	return result
}

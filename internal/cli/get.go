package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	SourceOptions
}

// GetResult is the payload of a successful get.
type GetResult struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

func (r GetResult) String() string {
	return r.Value
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one parameter as text",
		Long: `Build a parameter store and print the text form of one parameter.

Parameters from --file are applied first, then every --set in order.
A later assignment to the same key replaces the earlier one.

Example:
  parameterx get port --file app.yaml --set port=9090`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, args[0], cmd)
		},
	}

	addSourceFlags(cmd, &opts.SourceOptions)

	return cmd
}

func runGet(opts *GetOptions, key string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	p, err := buildParams(&opts.SourceOptions, formatter)
	if err != nil {
		return err
	}

	key = norm.NFC.String(key)
	value, ok := p.GetString(key)
	if !ok {
		return formatter.fail(ExitFailure, ErrCodeKeyNotFound, fmt.Sprintf("parameter not found: %s", key), nil)
	}
	typ, _ := p.TypeName(key)

	return formatter.Success(GetResult{Key: key, Value: value, Type: typ})
}

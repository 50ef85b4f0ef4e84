package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/parameterx"
)

// SourceOptions holds the flags that describe where parameters come from.
type SourceOptions struct {
	File string   // YAML file, applied first
	Set  []string // key=value assignments, applied after File
}

func addSourceFlags(cmd *cobra.Command, opts *SourceOptions) {
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YAML file with a mapping of parameters")
	cmd.Flags().StringArrayVar(&opts.Set, "set", nil, "parameter assignment key=value (repeatable)")
}

// buildParams assembles a literal store from the file and the assignments.
// On failure it writes the error through formatter and returns an ExitError.
func buildParams(src *SourceOptions, formatter *OutputFormatter) (*parameterx.Params, error) {
	var pairs []parameterx.Pair

	if src.File != "" {
		filePairs, err := LoadFile(src.File)
		if err != nil {
			return nil, failLoad(formatter, err)
		}
		slog.Debug("loaded parameter file", "path", src.File, "entries", len(filePairs))
		formatter.VerboseLog("Loaded %d parameter(s) from %s", len(filePairs), src.File)
		pairs = append(pairs, filePairs...)
	}

	setPairs, err := ParseAssignments(src.Set)
	if err != nil {
		return nil, failLoad(formatter, err)
	}
	pairs = append(pairs, setPairs...)

	p := parameterx.Of(pairs...)
	slog.Debug("parameters ready", "assignments", len(setPairs), "count", p.Len())
	return p, nil
}

func failLoad(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		var details any
		if loadErr.Line > 0 {
			details = map[string]int{"line": loadErr.Line}
		}
		return formatter.fail(ExitCommandError, loadErr.Code, loadErr.Message, details)
	}
	return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

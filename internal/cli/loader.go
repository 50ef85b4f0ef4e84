package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/parameterx"
)

// LoadError represents an error that occurred while reading parameter input.
type LoadError struct {
	Code    string
	Message string
	Line    int // YAML line if available
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadFile reads a YAML document whose root is a mapping of scalars and
// returns its entries in document order.
//
// Duplicate keys are kept; applying the pairs in order makes the last one win.
// Every value is kept as its literal text, and null becomes "".
func LoadFile(path string) ([]parameterx.Pair, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("parameter file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("error reading parameter file: %v", err)}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}

	// Empty document
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "document root must be a mapping", Line: root.Line}
	}

	pairs := make([]parameterx.Pair, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "keys must be scalars", Line: k.Line}
		}
		if v.Kind != yaml.ScalarNode {
			return nil, &LoadError{
				Code:    ErrCodeLoadFailed,
				Message: fmt.Sprintf("value for key %q must be a scalar", k.Value),
				Line:    v.Line,
			}
		}

		value := v.Value
		if v.Tag == "!!null" {
			value = ""
		}
		pairs = append(pairs, normalizedPair(k.Value, value))
	}
	return pairs, nil
}

// ParseAssignments parses key=value arguments. The value may itself contain
// '=' and may be empty; the key may not.
func ParseAssignments(args []string) ([]parameterx.Pair, error) {
	pairs := make([]parameterx.Pair, 0, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, &LoadError{
				Code:    ErrCodeInvalidAssignment,
				Message: fmt.Sprintf("invalid assignment %q: want key=value", arg),
			}
		}
		pairs = append(pairs, normalizedPair(key, value))
	}
	return pairs, nil
}

// normalizedPair NFC-normalizes external input so that canonically equal
// keys address the same entry.
func normalizedPair(key, value string) parameterx.Pair {
	return parameterx.P(norm.NFC.String(key), norm.NFC.String(value))
}

// Package config builds the per-invocation search configuration from the
// raw argument vector and the process environment.
package config

import "errors"

// Config holds everything one invocation needs: what to search for, where,
// and how. It is built once and never mutated afterwards.
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// Sentinel errors for missing positional arguments.
var (
	ErrMissingQuery    = errors.New("MISSING_QUERY: no search query provided")
	ErrMissingFilePath = errors.New("MISSING_FILE_PATH: no file path provided")
)

const ignoreCaseFlag = "-i"

// Build constructs a Config from the raw argument vector. args[0] is the
// program name and is always skipped. Every literal "-i" token after it is
// treated as the case-insensitivity flag and removed, wherever it appears;
// the first remaining token becomes the query and the second the file path.
// Tokens beyond those two are ignored. The final IgnoreCase is the flag
// OR'd with envIgnoreCase, which callers derive from the presence of the
// IGNORE_CASE environment variable.
func Build(args []string, envIgnoreCase bool) (*Config, error) {
	ignoreCase := envIgnoreCase

	var positional []string
	if len(args) > 1 {
		positional = make([]string, 0, len(args)-1)
		for _, arg := range args[1:] {
			if arg == ignoreCaseFlag {
				ignoreCase = true
				continue
			}
			positional = append(positional, arg)
		}
	}

	if len(positional) < 1 {
		return nil, ErrMissingQuery
	}
	if len(positional) < 2 {
		return nil, ErrMissingFilePath
	}

	return &Config{
		Query:      positional[0],
		FilePath:   positional[1],
		IgnoreCase: ignoreCase,
	}, nil
}

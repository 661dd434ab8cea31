package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/jsonsql/internal/cli/output"
	"github.com/leapstack-labs/jsonsql/internal/parser"
	"github.com/leapstack-labs/jsonsql/pkg/core"
)

// SelectOptions holds options for running a select.
type SelectOptions struct {
	// Input is a file to read the SQL from when no positional SQL is given
	Input string
	// Stdin is read when neither positional SQL nor Input is given
	Stdin io.Reader
}

// RunSelect runs the SQL statement against the configured files and writes
// the resulting JSON documents to the command's stdout.
func RunSelect(cmd *cobra.Command, args []string, opts *SelectOptions) error {
	cmdCtx := NewCommandContext(cmd)

	sqlText, err := readSQL(args, opts)
	if err != nil {
		return err
	}

	sel, err := parser.ParseSelect(sqlText)
	if err != nil {
		return err
	}

	files, err := validateFiles(cmdCtx.Cfg.Files)
	if err != nil {
		return err
	}

	cmdCtx.Logger.Debug("running select", "sql", sqlText, "files", files)
	return cmdCtx.Engine().Select(cmd.Context(), sel, files, cmd.OutOrStdout())
}

// readSQL picks the SQL source.
// Priority: positional argument > --input file > piped stdin
func readSQL(args []string, opts *SelectOptions) (string, error) {
	switch {
	case len(args) > 0:
		return args[0], nil
	case opts.Input != "":
		content, err := os.ReadFile(opts.Input)
		if err != nil {
			return "", fmt.Errorf("failed to read SQL file: %w", err)
		}
		return string(content), nil
	case opts.Stdin != nil && !output.IsTerminal(opts.Stdin):
		content, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("no SQL query provided (pass it as an argument, with --input, or on stdin)")
	}
}

// validateFiles checks that at least one file is given and that every path
// names an existing regular file.
func validateFiles(files []string) ([]string, error) {
	if len(files) == 0 {
		return nil, core.ErrNoInputFiles
	}

	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			return nil, fmt.Errorf("file %q does not exist or is not readable: %w", f, err)
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%q is not a regular file", f)
		}
	}

	return files, nil
}

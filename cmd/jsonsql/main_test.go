// Package main provides tests for the jsonsql CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/jsonsql/internal/cli"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "jsonsql v") {
		t.Errorf("version output should contain 'jsonsql v', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	expected := []string{"tables", "version", "completion", "--file", "--pretty", "--input"}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("help output should contain '%s', got: %s", want, output)
		}
	}
}

func TestSelectEndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	a := writeFile(t, dir, "a.json", `{"x": 1}`)
	b := writeFile(t, dir, "b.json", `{"y": 2}`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "merge",
			args: []string{"-f", a, "-f", b, "SELECT * FROM dual"},
			want: "{\"x\":1,\"y\":2}\n",
		},
		{
			name: "selective",
			args: []string{"-f", a, "-f", b, "SELECT * FROM a"},
			want: "{\"x\":1}\n",
		},
		{
			name: "comma separated files",
			args: []string{"--file", a + "," + b, "SELECT * FROM b, a"},
			want: "{\"y\":2}\n{\"x\":1}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := cli.NewRootCmd()
			out := new(bytes.Buffer)
			errOut := new(bytes.Buffer)
			cmd.SetOut(out)
			cmd.SetErr(errOut)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if errOut.Len() != 0 {
				t.Errorf("expected no stderr output, got: %s", errOut.String())
			}
		})
	}
}

func TestSelectMissingTable(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	a := writeFile(t, dir, "a.json", `{"x": 1}`)

	cmd := cli.NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"-f", a, "SELECT * FROM a, b"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for a missing table")
	}
	if !strings.Contains(err.Error(), `"B"`) {
		t.Errorf("error should name the missing table, got: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got: %s", out.String())
	}
}

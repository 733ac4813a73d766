// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("entrocalc")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestDefaults(t *testing.T) {
	opt, err := parse(t, "file.bin")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.BitLevel || opt.Recursive || opt.Decompress || opt.Graph {
		t.Fatalf("unexpected flags set: %+v", opt)
	}
	if opt.Output != FormatText {
		t.Fatalf("Output = %q, want text", opt.Output)
	}
	if opt.TopN != 10 {
		t.Fatalf("TopN = %d, want 10", opt.TopN)
	}
	if !opt.Header {
		t.Fatal("Header must default to true")
	}
	if opt.FailExitCode != 0 {
		t.Fatalf("FailExitCode = %d, want 0", opt.FailExitCode)
	}
	if len(opt.Files) != 1 || opt.Files[0] != "file.bin" {
		t.Fatalf("Files = %v", opt.Files)
	}
}

func TestShortAndLongAliases(t *testing.T) {
	short, err := parse(t, "-b", "-z", "-q", "f")
	if err != nil {
		t.Fatalf("short: %v", err)
	}
	long, err := parse(t, "--bit", "--decompress", "--quiet", "f")
	if err != nil {
		t.Fatalf("long: %v", err)
	}
	if short.BitLevel != long.BitLevel || short.Decompress != long.Decompress || short.Quiet != long.Quiet {
		t.Fatalf("alias mismatch: %+v vs %+v", short, long)
	}
}

func TestStdinOperand(t *testing.T) {
	opt, err := parse(t, "-b", "-")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(opt.Files) != 1 || opt.Files[0] != "-" {
		t.Fatalf("Files = %v", opt.Files)
	}
}

func TestFilesAfterDoubleDash(t *testing.T) {
	opt, err := parse(t, "--", "-weird-name")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(opt.Files) != 1 || opt.Files[0] != "-weird-name" {
		t.Fatalf("Files = %v", opt.Files)
	}
}

func TestHelpRequested(t *testing.T) {
	if _, err := parse(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "--version")
	if err != nil || !opt.Version {
		t.Fatalf("version parse: %+v, %v", opt, err)
	}
}

func TestValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		argv []string
	}{
		{"no operands", nil},
		{"negative window", []string{"-w", "-1", "f"}},
		{"zero top", []string{"--top", "0", "f"}},
		{"bad output", []string{"-o", "xml", "f"}},
		{"graph without window", []string{"--graph", "f"}},
		{"graph with json", []string{"-w", "16", "--graph", "-o", "json", "f"}},
		{"graph with jsonl", []string{"-w", "16", "--graph", "-o", "jsonl", "f"}},
		{"ext without recursive", []string{"-e", ".bin", "f"}},
		{"window csv", []string{"-w", "16", "-o", "csv", "f"}},
		{"window pdf", []string{"-w", "16", "--pdf", "out.pdf", "f"}},
		{"window histogram", []string{"-w", "16", "--histogram", "f"}},
		{"fail exit out of range", []string{"--fail-exit-code", "300", "f"}},
	}
	for _, c := range cases {
		if _, err := parse(t, c.argv...); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestExtGetsDotPrefix(t *testing.T) {
	opt, err := parse(t, "-r", "-e", "bin", "dir")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.Ext != ".bin" {
		t.Fatalf("Ext = %q, want .bin", opt.Ext)
	}
}

func TestWindowWithJSONAllowed(t *testing.T) {
	opt, err := parse(t, "-w", "1024", "-o", "json", "f")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.WindowSize != 1024 {
		t.Fatalf("WindowSize = %d", opt.WindowSize)
	}
}

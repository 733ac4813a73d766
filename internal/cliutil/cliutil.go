// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals,
// preserving '-', '--' and '--x=y' semantics. Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" {
			posArgs = append(posArgs, arg)
			continue
		}
		if strings.HasPrefix(arg, "-") {
			if strings.Contains(arg, "=") {
				flagArgs = append(flagArgs, arg)
				continue
			}
			name := strings.TrimLeft(arg, "-")
			needsVal := !boolFlags[name]
			flagArgs = append(flagArgs, arg)
			if needsVal && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
			continue
		}
		posArgs = append(posArgs, arg)
	}
	return
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}

// CollectInputs resolves operands to regular files, in operand order.
// Directories are walked when recursive is true and warned about otherwise.
// ext (".bin" style, empty = all) filters walked files only; explicitly named
// files are always kept. Missing operands are deferred to the per-file open
// so they surface as ordinary per-file errors.
func CollectInputs(operands []string, recursive bool, ext string) (files, warnings []string) {
	for _, op := range operands {
		if op == "-" {
			files = append(files, op)
			continue
		}
		fi, err := os.Stat(op)
		if err != nil || !fi.IsDir() {
			files = append(files, op)
			continue
		}
		if !recursive {
			warnings = append(warnings, fmt.Sprintf("warning: %s is a directory (use --recursive)", op))
			continue
		}
		_ = filepath.WalkDir(op, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("warning: %s: %v", path, err))
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if ext != "" && filepath.Ext(path) != ext {
				return nil
			}
			files = append(files, path)
			return nil
		})
	}
	return files, warnings
}

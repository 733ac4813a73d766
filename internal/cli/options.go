// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"entrocalc/internal/cliutil"
	"entrocalc/internal/version"
)

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
)

// Options holds all CLI flags and file operands.
type Options struct {
	// Inputs
	Files      []string
	Recursive  bool
	Ext        string // with --recursive, keep only this extension
	Decompress bool

	// Measurement
	BitLevel   bool // bit-population alphabet instead of byte values
	WindowSize int  // bytes per window; 0 = whole-file report

	// Output
	Output    string
	Header    bool // true unless --no-header
	Graph     bool
	Histogram bool
	Frequency bool
	TopN      int
	PDFFile   string

	// Behavior
	FailExitCode int
	Quiet        bool
	Version      bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError and a custom usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}

func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – Shannon entropy calculator for files\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [options] FILE...   ('-' reads stdin)\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "  -r, --recursive             Descend into directory operands [%s]\n", def("recursive"))
		fmt.Fprintln(out, "  -e, --ext string            With --recursive, keep only files with this extension")
		fmt.Fprintf(out, "  -z, --decompress            Read gzip inputs transparently [%s]\n", def("decompress"))

		fmt.Fprintln(out, "\nMeasurement:")
		fmt.Fprintf(out, "  -b, --bit                   Bit-population (Hamming weight) alphabet [%s]\n", def("bit"))
		fmt.Fprintf(out, "  -w, --window int            Per-window entropy scan, N-byte windows (0=off) [%s]\n", def("window"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | csv [%s]\n", def("output"))
		fmt.Fprintf(out, "      --graph                 ASCII graph of window entropies (needs --window) [%s]\n", def("graph"))
		fmt.Fprintf(out, "      --histogram             Symbol-distribution histogram (text, one input) [%s]\n", def("histogram"))
		fmt.Fprintf(out, "      --frequency             Top-N frequent bytes chart (text, one input) [%s]\n", def("frequency"))
		fmt.Fprintf(out, "      --top int               Rows in the frequency chart [%s]\n", def("top"))
		fmt.Fprintln(out, "      --pdf string            Also render the text report into a PDF file")
		fmt.Fprintf(out, "      --no-header             Suppress the CSV header row [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nBehavior:")
		fmt.Fprintf(out, "      --fail-exit-code int    Exit code when any input fails [%s]\n", def("fail-exit-code"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// ParseArgs registers and parses all flags, expands positionals, and
// validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Inputs
	fs.BoolVar(&opt.Recursive, "recursive", false, "descend into directory operands [false]")
	fs.BoolVar(&opt.Recursive, "r", false, "alias of --recursive")
	fs.StringVar(&opt.Ext, "ext", "", "with --recursive, keep only this extension")
	fs.StringVar(&opt.Ext, "e", "", "alias of --ext")
	fs.BoolVar(&opt.Decompress, "decompress", false, "read gzip inputs transparently [false]")
	fs.BoolVar(&opt.Decompress, "z", false, "alias of --decompress")

	// Measurement
	fs.BoolVar(&opt.BitLevel, "bit", false, "bit-population alphabet [false]")
	fs.BoolVar(&opt.BitLevel, "b", false, "alias of --bit")
	fs.IntVar(&opt.WindowSize, "window", 0, "per-window entropy scan, N-byte windows (0=off) [0]")
	fs.IntVar(&opt.WindowSize, "w", 0, "alias of --window")

	// Output
	fs.StringVar(&opt.Output, "output", FormatText, "output format: text | json | jsonl | csv [text]")
	fs.StringVar(&opt.Output, "o", FormatText, "alias of --output")
	fs.BoolVar(&opt.Graph, "graph", false, "ASCII graph of window entropies [false]")
	fs.BoolVar(&opt.Histogram, "histogram", false, "symbol-distribution histogram [false]")
	fs.BoolVar(&opt.Frequency, "frequency", false, "top-N frequent bytes chart [false]")
	fs.IntVar(&opt.TopN, "top", 10, "rows in the frequency chart [10]")
	fs.StringVar(&opt.PDFFile, "pdf", "", "also render the text report into a PDF file")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress the CSV header row [false]")

	// Behavior
	fs.IntVar(&opt.FailExitCode, "fail-exit-code", 0, "exit code when any input fails [0]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Files = append(opt.Files, files...)

	// Normalize before validating: ".bin" and "bin" mean the same filter.
	if opt.Ext != "" && !strings.HasPrefix(opt.Ext, ".") {
		opt.Ext = "." + opt.Ext
	}

	return opt, Validate(&opt)
}

// Validate applies the CLI invariants. No file is touched here; operand
// existence is a per-file concern.
func Validate(o *Options) error {
	if len(o.Files) == 0 {
		return errors.New("at least one file operand is required")
	}
	if o.WindowSize < 0 {
		return errors.New("--window must be ≥ 0")
	}
	if o.TopN < 1 {
		return errors.New("--top must be ≥ 1")
	}
	if o.FailExitCode < 0 || o.FailExitCode > 255 {
		return errors.New("--fail-exit-code must be between 0 and 255")
	}
	switch o.Output {
	case FormatText, FormatJSON, FormatJSONL, FormatCSV:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Graph && o.WindowSize == 0 {
		return errors.New("--graph requires --window")
	}
	if o.Graph && o.Output != FormatText {
		return errors.New("--graph supports text output only")
	}
	if o.Ext != "" && !o.Recursive {
		return errors.New("--ext requires --recursive")
	}
	if o.WindowSize > 0 {
		if o.Output == FormatCSV {
			return errors.New("--window supports text, json and jsonl output only")
		}
		if o.PDFFile != "" {
			return errors.New("--pdf is not available in window mode")
		}
		if o.Histogram || o.Frequency {
			return errors.New("--histogram/--frequency are not available in window mode")
		}
	}
	return nil
}

// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"entrocalc-core/entropy"
	"entrocalc-core/source"
	"entrocalc/internal/cli"
	"entrocalc/internal/cliutil"
	"entrocalc/internal/output"
	"entrocalc/internal/pretty"
	"entrocalc/internal/version"
	"entrocalc/internal/writers"
	"entrocalc/pkg/api"
)

// RunContext parses argv and processes every input in operand order.
// A file that fails to open or read gets one error line on stderr and no
// report section; the batch continues. Exit codes: 0 ok, 2 usage error,
// 3 output failure, 130 interrupted.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("entrocalc")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "entrocalc version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	alphabet := entropy.AlphabetByte
	if opts.BitLevel {
		alphabet = entropy.AlphabetBitPop
	}

	files, warns := cliutil.CollectInputs(opts.Files, opts.Recursive, opts.Ext)
	if !opts.Quiet {
		for _, w := range warns {
			_, _ = fmt.Fprintln(stderr, w)
		}
	}
	if len(files) == 0 {
		_, _ = fmt.Fprintln(stderr, "error: no input files remain after directory filtering")
		return 2
	}

	if opts.WindowSize > 0 {
		return runWindows(parent, opts, alphabet, files, outw, stderr)
	}
	return runReports(parent, opts, alphabet, files, outw, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func runReports(ctx context.Context, opts cli.Options, a entropy.Alphabet, files []string, outw *bufio.Writer, stderr io.Writer) int {
	// Visualizations attach to a single text-mode input; anything else gets
	// a warning, not an error, so batch runs stay usable.
	viz := opts.Output == cli.FormatText && len(files) == 1 && (opts.Histogram || opts.Frequency)
	if (opts.Histogram || opts.Frequency) && !viz && !opts.Quiet {
		_, _ = fmt.Fprintln(stderr, "warning: --histogram/--frequency apply to text output with a single input")
	}

	in, errCh := writers.StartReportWriter(outw, opts.Output, opts.Header, 16)

	var (
		failed   int
		reports  []output.FileReport // kept only for --pdf
		lastHist *entropy.Histogram
	)
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		h, err := scanFile(path, a, opts.Decompress)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", path, err)
			failed++
			continue
		}
		fr := output.FileReport{File: path, Report: entropy.Derive(h)}
		if opts.PDFFile != "" {
			reports = append(reports, fr)
		}
		if viz {
			lastHist = h
		}
		in <- fr
	}
	close(in)

	if werr := <-errCh; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}

	if lastHist != nil {
		if opts.Histogram {
			_, _ = fmt.Fprint(outw, "\n"+pretty.RenderHistogram(lastHist, pretty.DefaultOptions))
		}
		if opts.Frequency {
			_, _ = fmt.Fprint(outw, "\n"+pretty.RenderFrequency(lastHist, opts.TopN, pretty.DefaultOptions))
		}
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if opts.PDFFile != "" {
		if err := writers.WritePDF(opts.PDFFile, reports); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if ctx.Err() != nil {
		return 130
	}
	if failed > 0 {
		return opts.FailExitCode
	}
	return 0
}

func runWindows(ctx context.Context, opts cli.Options, a entropy.Alphabet, files []string, outw *bufio.Writer, stderr io.Writer) int {
	var failed int
	// json buffers the whole batch so stdout stays one document; text, jsonl
	// and the graph stream per file.
	jsonPts := []api.WindowPointV1{}
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		rc, err := source.Open(path, opts.Decompress)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", path, err)
			failed++
			continue
		}
		pts, err := entropy.Windows(rc, a, opts.WindowSize)
		if cerr := rc.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", path, err)
			failed++
			continue
		}

		switch {
		case opts.Graph:
			_, err = fmt.Fprintf(outw, "--- Window scan: %s ---\n%s",
				path, pretty.RenderWindowGraph(pts, pretty.DefaultOptions))
		case opts.Output == cli.FormatJSON:
			jsonPts = append(jsonPts, output.ToAPIWindows(path, pts)...)
		case opts.Output == cli.FormatJSONL:
			err = output.WriteWindowsJSONL(outw, path, pts)
		default:
			err = output.WriteWindowsText(outw, path, opts.WindowSize, pts)
		}
		if writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if opts.Output == cli.FormatJSON {
		if err := output.WriteWindowsJSON(outw, jsonPts); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	if ctx.Err() != nil {
		return 130
	}
	if failed > 0 {
		return opts.FailExitCode
	}
	return 0
}

// scanFile opens, accumulates and closes one input.
func scanFile(path string, a entropy.Alphabet, decompress bool) (*entropy.Histogram, error) {
	rc, err := source.Open(path, decompress)
	if err != nil {
		return nil, err
	}
	h, err := entropy.Accumulate(rc, a)
	if cerr := rc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

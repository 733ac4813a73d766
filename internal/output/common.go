// internal/output/common.go
package output

import "entrocalc-core/entropy"

// FileReport couples one operand path with its derived entropy report.
type FileReport struct {
	File   string
	Report entropy.Report
}

// CSVHeader is the canonical header row for CSV output. Keep this as the
// single source of truth; bit-population rows leave the coding columns empty.
var CSVHeader = []string{
	"file",
	"alphabet",
	"size_bytes",
	"entropy_bits_per_symbol",
	"entropy_per_byte_bytes",
	"entropy_of_file_bits",
	"entropy_of_file_bytes",
	"delta_compressible_bytes",
	"best_coding_ratio",
}

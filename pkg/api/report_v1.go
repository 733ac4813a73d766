// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for per-file entropy reports.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
//
// The byte alphabet populates the coding pointers; the bit-population
// alphabet leaves them absent, preserving the two historical report shapes.
// BestCodingRatio is absent when undefined (zero-entropy input): JSON has no
// representation for +Inf.
type ReportV1 struct {
	File             string   `json:"file"`
	Alphabet         string   `json:"alphabet"` // "byte" | "bitpop"
	SizeBytes        uint64   `json:"size_bytes"`
	Empty            bool     `json:"empty,omitempty"`
	EntropyBits      float64  `json:"entropy_bits_per_symbol"`
	EntropyPerByte   *float64 `json:"entropy_per_byte_bytes,omitempty"`
	EntropyFileBits  *float64 `json:"entropy_of_file_bits,omitempty"`
	EntropyFileBytes *float64 `json:"entropy_of_file_bytes,omitempty"`
	DeltaBytes       *float64 `json:"delta_compressible_bytes,omitempty"`
	BestCodingRatio  *float64 `json:"best_coding_ratio,omitempty"`
}

// WindowPointV1 is the stable schema for window-scan output.
type WindowPointV1 struct {
	File        string  `json:"file"`
	Offset      uint64  `json:"offset"`
	Size        uint64  `json:"size"`
	EntropyBits float64 `json:"entropy_bits_per_symbol"`
}

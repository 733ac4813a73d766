// internal/output/json.go
package output

import (
	"io"

	"entrocalc-core/entropy"
	"entrocalc/internal/jsonutil"
	"entrocalc/pkg/api"
)

// ToAPIReport converts a domain report to the stable wire schema (v1).
// The coding pointers stay nil for the bit-population alphabet; an
// undefined ratio (zero-entropy input) is an absent field.
func ToAPIReport(r FileReport) api.ReportV1 {
	rep := r.Report
	v := api.ReportV1{
		File:        r.File,
		Alphabet:    rep.Alphabet.String(),
		SizeBytes:   rep.TotalBytes,
		Empty:       rep.Empty,
		EntropyBits: rep.Entropy,
	}
	if cm := rep.Coding; cm != nil {
		v.EntropyPerByte = f64(cm.PerByte)
		v.EntropyFileBits = f64(cm.FileBits)
		v.EntropyFileBytes = f64(cm.FileBytes)
		v.DeltaBytes = f64(cm.DeltaBytes)
		if cm.RatioFinite {
			v.BestCodingRatio = f64(cm.Ratio)
		}
	}
	return v
}

func f64(v float64) *float64 { return &v }

func toAPIReports(list []FileReport) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	return out
}

// WriteJSON writes a single pretty-indented JSON array of v1 reports.
func WriteJSON(w io.Writer, list []FileReport) error {
	return jsonutil.EncodePretty(w, toAPIReports(list))
}

// ToAPIWindows converts a window scan to the v1 wire points.
func ToAPIWindows(file string, pts []entropy.WindowPoint) []api.WindowPointV1 {
	out := make([]api.WindowPointV1, 0, len(pts))
	for _, p := range pts {
		out = append(out, api.WindowPointV1{
			File:        file,
			Offset:      p.Offset,
			Size:        p.Size,
			EntropyBits: p.Entropy,
		})
	}
	return out
}

// WriteWindowsJSON writes one pretty JSON array of window points. Callers
// scanning several files append their ToAPIWindows slices first, so the whole
// batch stays a single well-formed document.
func WriteWindowsJSON(w io.Writer, pts []api.WindowPointV1) error {
	return jsonutil.EncodePretty(w, pts)
}

// WriteWindowsJSONL streams a window scan one JSON point per line.
func WriteWindowsJSONL(w io.Writer, file string, pts []entropy.WindowPoint) error {
	return jsonutil.EncodeLines(w, ToAPIWindows(file, pts))
}

// internal/output/csv.go
package output

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes one row per report. Bit-population rows leave the coding
// columns empty; an undefined ratio renders "inf" for a constant-byte file
// and empty for an empty file.
func WriteCSV(w io.Writer, list []FileReport, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := cw.Write(csvRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(r FileReport) []string {
	rep := r.Report
	row := []string{
		r.File,
		rep.Alphabet.String(),
		strconv.FormatUint(rep.TotalBytes, 10),
		fmtFloat(rep.Entropy),
		"", "", "", "", "",
	}
	if cm := rep.Coding; cm != nil {
		row[4] = fmtFloat(cm.PerByte)
		row[5] = fmtFloat(cm.FileBits)
		row[6] = fmtFloat(cm.FileBytes)
		row[7] = fmtFloat(cm.DeltaBytes)
		switch {
		case cm.RatioFinite:
			row[8] = fmtFloat(cm.Ratio)
		case !rep.Empty:
			row[8] = "inf"
		}
	}
	return row
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

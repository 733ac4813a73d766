// internal/writers/pdf_test.go
package writers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"entrocalc/internal/output"
)

func TestWritePDFProducesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	reports := []output.FileReport{
		report(t, "a.bin", []byte{0, 0, 255, 255}),
		report(t, "b.bin", []byte("some text")),
	}
	require.NoError(t, WritePDF(path, reports))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(b), 4)
	require.Equal(t, "%PDF", string(b[:4]))
}

func TestWritePDFBadPath(t *testing.T) {
	err := WritePDF(filepath.Join(t.TempDir(), "missing", "report.pdf"), nil)
	require.Error(t, err)
}

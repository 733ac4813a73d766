// internal/output/csv_test.go
package output

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"

	"entrocalc-core/entropy"
)

func csvRows(t *testing.T, list []FileReport, header bool) [][]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, list, header))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVHeaderAndRow(t *testing.T) {
	rep := derive(t, []byte{0x00, 0x00, 0xFF, 0xFF}, entropy.AlphabetByte)
	rows := csvRows(t, []FileReport{{File: "four.bin", Report: rep}}, true)

	require.Len(t, rows, 2)
	require.Equal(t, CSVHeader, rows[0])
	require.Equal(t, "four.bin", rows[1][0])
	require.Equal(t, "byte", rows[1][1])
	require.Equal(t, "4", rows[1][2])
	require.Equal(t, "1.000000", rows[1][3])
	require.Equal(t, "8.000000", rows[1][8])
}

func TestWriteCSVNoHeader(t *testing.T) {
	rep := derive(t, []byte("x"), entropy.AlphabetByte)
	rows := csvRows(t, []FileReport{{File: "x", Report: rep}}, false)
	require.Len(t, rows, 1)
}

func TestWriteCSVBitPopLeavesCodingEmpty(t *testing.T) {
	rep := derive(t, []byte{0x0F, 0xF0}, entropy.AlphabetBitPop)
	rows := csvRows(t, []FileReport{{File: "f", Report: rep}}, false)
	row := rows[0]
	require.Equal(t, "bitpop", row[1])
	for i := 4; i <= 8; i++ {
		require.Empty(t, row[i], "column %d", i)
	}
}

func TestWriteCSVDegenerateRatios(t *testing.T) {
	constant := derive(t, []byte{7, 7, 7}, entropy.AlphabetByte)
	empty := derive(t, nil, entropy.AlphabetByte)
	rows := csvRows(t, []FileReport{
		{File: "const", Report: constant},
		{File: "empty", Report: empty},
	}, false)
	require.Equal(t, "inf", rows[0][8])
	require.Empty(t, rows[1][8])
}

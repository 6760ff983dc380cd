package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"invoicepipe/internal/common"
)

func TestDecodeCSV(t *testing.T) {
	in := "Client,Description,Rate\nAcme,Design,100\nGlobex,Hosting,25\n"

	tables, err := Decode("invoices.csv", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tables, 1)

	tbl := tables[0]
	require.Equal(t, []string{"Client", "Description", "Rate"}, tbl.Headers)
	require.Len(t, tbl.Rows, 2)
	require.Equal(t, []string{"Acme", "Design", "100"}, tbl.Rows[0])
}

func TestDecodeCSVRaggedRows(t *testing.T) {
	in := "A,B,C\n1,2\n1,2,3,4\n"

	tables, err := Decode("ragged.csv", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tables[0].Rows, 2)
	require.Len(t, tables[0].Rows[0], 2)
	require.Len(t, tables[0].Rows[1], 4)
}

func TestDecodeEmptyCSV(t *testing.T) {
	tables, err := Decode("empty.csv", strings.NewReader(""))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Empty(t, tables[0].Headers)
	require.Empty(t, tables[0].Rows)
}

func TestDecodeUnsupportedExtension(t *testing.T) {
	_, err := Decode("notes.txt", strings.NewReader("hello"))
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrUnsupportedFormat)
	require.Contains(t, err.Error(), "txt")
}

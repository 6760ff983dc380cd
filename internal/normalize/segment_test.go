package normalize

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"invoicepipe/internal/model"
	"invoicepipe/internal/tabular"
)

func testSegmenter() *Segmenter {
	return &Segmenter{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:    testClock,
	}
}

func TestSegmentByClient(t *testing.T) {
	table := tabular.Table{
		Name:    "bulk",
		Headers: []string{"Client", "Description", "Quantity", "Rate"},
		Rows: [][]string{
			{"Acme", "Design", "2", "100"},
			{"Globex", "Hosting", "1", "25"},
			{"Acme", "Support", "3", "50"},
		},
	}

	recs := testSegmenter().Segment(table)

	require.Len(t, recs, 2)

	require.Equal(t, "Acme", recs[0].Client.Name)
	require.Equal(t, "INV-20240315-001", recs[0].Header.Number)
	require.Len(t, recs[0].Items, 2)
	require.Equal(t, "Design", recs[0].Items[0].Description)
	require.Equal(t, "Support", recs[0].Items[1].Description)

	require.Equal(t, "Globex", recs[1].Client.Name)
	require.Equal(t, "INV-20240315-002", recs[1].Header.Number)
	require.Len(t, recs[1].Items, 1)

	// partition: every source row lands in exactly one group
	total := 0
	for _, r := range recs {
		total += len(r.Items)
	}
	require.Equal(t, len(table.Rows), total)
}

func TestSegmentClientPrecedesInvoiceNumber(t *testing.T) {
	table := tabular.Table{
		Headers: []string{"Invoice Number", "Customer", "Description", "Rate"},
		Rows: [][]string{
			{"A-1", "Acme", "Design", "100"},
			{"A-2", "Acme", "Support", "50"},
			{"B-1", "Globex", "Hosting", "25"},
		},
	}

	recs := testSegmenter().Segment(table)

	require.Len(t, recs, 2, "customer column wins even with three distinct invoice numbers")
	require.Equal(t, "Acme", recs[0].Client.Name)
	require.Equal(t, "Globex", recs[1].Client.Name)
}

func TestSegmentByInvoiceNumber(t *testing.T) {
	table := tabular.Table{
		Headers: []string{"Invoice #", "Description", "Rate"},
		Rows: [][]string{
			{"A-1", "Design", "100"},
			{"A-1", "Revisions", "60"},
			{"B-2", "Hosting", "25"},
		},
	}

	recs := testSegmenter().Segment(table)

	require.Len(t, recs, 2)
	require.Equal(t, "A-1", recs[0].Header.Number)
	require.Len(t, recs[0].Items, 2)
	require.Equal(t, "B-2", recs[1].Header.Number)
	require.Equal(t, model.DefaultClientName, recs[0].Client.Name)
}

func TestSegmentClientContactColumns(t *testing.T) {
	table := tabular.Table{
		Headers: []string{"Client", "Client Email", "Description", "Rate"},
		Rows: [][]string{
			{"Acme", "ap@acme.test", "Design", "100"},
		},
	}

	recs := testSegmenter().Segment(table)

	require.Len(t, recs, 1)
	require.Equal(t, "ap@acme.test", recs[0].Client.Email)
}

func TestSegmentSkipsEmptyKeyRows(t *testing.T) {
	table := tabular.Table{
		Headers: []string{"Client", "Description", "Rate"},
		Rows: [][]string{
			{"Acme", "Design", "100"},
			{"", "Orphan", "50"},
		},
	}

	recs := testSegmenter().Segment(table)

	require.Len(t, recs, 1)
	require.Len(t, recs[0].Items, 1)
	require.Equal(t, "Design", recs[0].Items[0].Description)
}

func TestSegmentNoGroupingColumn(t *testing.T) {
	table := tabular.Table{
		Headers: []string{"Name", "Value"},
		Rows:    [][]string{{"Consulting", "500"}},
	}

	recs := testSegmenter().Segment(table)

	require.Len(t, recs, 1)
	require.Equal(t, GenericImportNotes, recs[0].Notes)
}

func TestSegmentAllKeysEmpty(t *testing.T) {
	table := tabular.Table{
		Headers: []string{"Client", "Description", "Rate"},
		Rows:    [][]string{{"", "Design", "100"}},
	}

	recs := testSegmenter().Segment(table)

	require.Len(t, recs, 1)
	require.Equal(t, GenericImportNotes, recs[0].Notes)
}

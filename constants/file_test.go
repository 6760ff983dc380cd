package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapExtToFormat(t *testing.T) {
	tests := []struct {
		ext  string
		want FileFormat
	}{
		{".csv", TABULAR},
		{"XLSX", TABULAR},
		{"xls", TABULAR},
		{".PDF", PDF},
		{"png", IMAGE},
		{"jpg", IMAGE},
		{"jpeg", IMAGE},
		{"txt", ""},
		{"", ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, MapExtToFormat(tc.ext), "ext %q", tc.ext)
	}
}

func TestNormalizeExt(t *testing.T) {
	require.Equal(t, "pdf", NormalizeExt(".PDF"))
	require.Equal(t, "csv", NormalizeExt("csv"))
	require.Equal(t, "", NormalizeExt("."))
}

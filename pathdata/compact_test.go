package pathdata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"materialize/pathdata"
)

func TestCompactSeparators(t *testing.T) {
	require.Equal(t, "L20-920", pathdata.Compact([]string{"L", "20", "-920"}))
	require.Equal(t, "L20 920", pathdata.Compact([]string{"L", "20", "920"}))
	require.Equal(t, "M0-960L960 0Z", pathdata.Compact([]string{"M", "0", "-960", "L", "960", "0", "Z"}))
	require.Equal(t, "", pathdata.Compact(nil))
}

func TestRewrite(t *testing.T) {
	ctx := pathdata.MaterialContext(24)
	require.Equal(t, "M0-960L960 0", pathdata.Rewrite("M0 0L24 24", ctx))
	require.Equal(t, "m40 40h80v-40z", pathdata.Rewrite("m1,1 h2 v-1 z", ctx))
}

func TestRewriteRoundTripsTokenShape(t *testing.T) {
	ctx := pathdata.MaterialContext(48)
	scanner := pathdata.NewPathScanner()
	in := "M4 4C4 8 8 8 8 4S12 0 12 4Q16 8 20 4T24 4A2 2 0 0 1 28 4L30 30H2V2ZM1 1l1 1z"

	out := scanner.Scan(pathdata.Rewrite(in, ctx))
	ref := scanner.Scan(in)

	require.Len(t, out, len(ref))
	for i := range ref {
		require.Equal(t, ref[i].TokenType, out[i].TokenType, "token %d", i)
	}
}

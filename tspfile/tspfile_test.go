package tspfile_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/startriple/geom"
	"github.com/katalvlaran/startriple/pointgen"
	"github.com/katalvlaran/startriple/tspfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_SkipsHeaderAndBlankLines(t *testing.T) {
	const in = "NAME : demo\n" +
		"COMMENT : three points\n" +
		"TYPE : TSP\n" +
		"DIMENSION : 3\n" +
		"NODE_COORD_SECTION\n" +
		"1 0 0\n" +
		"\n" +
		"2 1.5 -2\n" +
		"  3   1e3\t4  \n" +
		"EOF\n" +
		"9 9 9\n"

	got, err := tspfile.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(1.5, -2), geom.Pt(1000, 4)}, got)
}

func TestRead_RepeatedIDs(t *testing.T) {
	got, err := tspfile.Read(strings.NewReader("NODE_COORD_SECTION\n1 1 2\n1 3 4\n"))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(1, 2), geom.Pt(3, 4)}, got)
}

func TestRead_EmptySection(t *testing.T) {
	got, err := tspfile.Read(strings.NewReader("NODE_COORD_SECTION\nEOF\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"no section", "NAME : x\n1 0 0\n", tspfile.ErrMissingSection, ""},
		{"empty input", "", tspfile.ErrMissingSection, ""},
		{"short record", "NODE_COORD_SECTION\n1 0 0\n2 5\n", tspfile.ErrMalformedLine, "line 3"},
		{"bad number", "NODE_COORD_SECTION\n1 x 0\n", tspfile.ErrMalformedLine, "line 2"},
		{"nan", "NODE_COORD_SECTION\n1 NaN 0\n", tspfile.ErrMalformedLine, "line 2"},
		{"inf", "H\nNODE_COORD_SECTION\n1 0 +Inf\n", geom.ErrNonFinite, "line 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tspfile.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			if tc.line != "" {
				assert.Contains(t, err.Error(), tc.line)
			}
		})
	}
}

func TestRead_LineTooLong(t *testing.T) {
	long := "2 " + strings.Repeat("1", tspfile.MaxLineBytes) + " 0\n"
	in := "NODE_COORD_SECTION\n1 0 0\n" + long

	_, err := tspfile.Read(strings.NewReader(in))
	require.ErrorIs(t, err, tspfile.ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 3")

	// Just under the cap is still accepted.
	ok := "2 " + strings.Repeat("0", tspfile.MaxLineBytes-8) + " 5\n"
	got, err := tspfile.Read(strings.NewReader("NODE_COORD_SECTION\n" + ok))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(0, 5)}, got)
}

func TestWrite_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tspfile.Write(&buf, []geom.Point{geom.Pt(0.5, -3), geom.Pt(1e21, 7)}))

	assert.Equal(t, "NODE_COORD_SECTION\n1 0.5 -3\n2 1e+21 7\nEOF\n", buf.String())
}

func TestRoundTrip_File(t *testing.T) {
	pts, err := pointgen.Normal(500, 0, 1e6, 42)
	require.NoError(t, err)
	pts = append(pts, geom.Pt(math.SmallestNonzeroFloat64, -0.1))

	path := filepath.Join(t.TempDir(), "cloud.tsp")
	require.NoError(t, tspfile.WriteFile(path, pts))

	got, err := tspfile.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pts, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := tspfile.ReadFile(filepath.Join(t.TempDir(), "nope.tsp"))
	require.Error(t, err)
}

package farmfile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gardencraft/farm"
	"github.com/katalvlaran/gardencraft/farmfile"
)

var ringCodes = [][]int{
	{1, 1, 1, 0},
	{1, 2, 1, 3},
	{1, 1, 1, 0},
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, farmfile.YAML, farmfile.FormatFor("plot.yaml"))
	assert.Equal(t, farmfile.YAML, farmfile.FormatFor("dir/plot.YML"))
	assert.Equal(t, farmfile.Text, farmfile.FormatFor("plot.txt"))
	assert.Equal(t, farmfile.Text, farmfile.FormatFor("plot"))
	assert.Equal(t, "yaml", farmfile.YAML.String())
	assert.Equal(t, "unknown", farmfile.Format(9).String())
}

//----------------------------------------------------------------------------//
// Text
//----------------------------------------------------------------------------//

func TestDecodeText_Layouts(t *testing.T) {
	inputs := map[string]string{
		"Spaces":  "1 1 1 0\n1 2 1 3\n1 1 1 0\n",
		"Commas":  "1,1,1,0\n1, 2, 1, 3\n1,1,1,0",
		"Compact": "# a fenced plot\n\n1110\n1213\n\n1110\n",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			g, err := farmfile.Decode(strings.NewReader(in), farmfile.Text)
			require.NoError(t, err)
			assert.Equal(t, ringCodes, g.Codes())
		})
	}
}

func TestDecodeText_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", farm.ErrInvalidDimensions},
		{"OnlyComments", "# nothing\n\n", farm.ErrInvalidDimensions},
		{"Jagged", "1 1 1\n1 1\n", farm.ErrInvalidDimensions},
		{"BadCode", "1 1\n1 4\n", farm.ErrInvalidCellCode},
		{"BadCompactCode", "11\n19\n", farm.ErrInvalidCellCode},
		{"NotANumber", "1 x 1\n", farmfile.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := farmfile.Decode(strings.NewReader(tc.in), farmfile.Text)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

func TestDecodeText_LineNumberInError(t *testing.T) {
	_, err := farmfile.Decode(strings.NewReader("1 1\n\n1 ?\n"), farmfile.Text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

//----------------------------------------------------------------------------//
// YAML
//----------------------------------------------------------------------------//

func TestDecodeYAML(t *testing.T) {
	in := `
width: 4
height: 3
cells:
  - [1, 1, 1, 0]
  - [1, 2, 1, 3]
  - [1, 1, 1, 0]
`
	g, err := farmfile.Decode(strings.NewReader(in), farmfile.YAML)
	require.NoError(t, err)
	assert.Equal(t, ringCodes, g.Codes())
}

func TestDecodeYAML_ShapeFromCells(t *testing.T) {
	in := "cells:\n  - [1, 1]\n  - [1, 1]\n  - [2, 3]\n"
	g, err := farmfile.Decode(strings.NewReader(in), farmfile.YAML)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 3, g.Height())
}

func TestDecodeYAML_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"EmptyDocument", "", farm.ErrInvalidDimensions},
		{"NoCells", "width: 2\nheight: 2\n", farm.ErrInvalidDimensions},
		{"WidthMismatch", "width: 3\ncells:\n  - [1, 1]\n", farm.ErrInvalidDimensions},
		{"HeightMismatch", "height: 3\ncells:\n  - [1, 1]\n", farm.ErrInvalidDimensions},
		{"BadCode", "cells:\n  - [1, 8]\n", farm.ErrInvalidCellCode},
		{"NotAList", "cells: fence\n", farmfile.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := farmfile.Decode(strings.NewReader(tc.in), farmfile.YAML)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

//----------------------------------------------------------------------------//
// Round trips and files
//----------------------------------------------------------------------------//

func TestEncodeDecode_RoundTrip(t *testing.T) {
	g, err := farm.FromCells(4, 3, ringCodes)
	require.NoError(t, err)

	for _, f := range []farmfile.Format{farmfile.Text, farmfile.YAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, farmfile.Encode(&buf, g, f))
			back, err := farmfile.Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, g.Codes(), back.Codes())
		})
	}
}

func TestEncodeYAML_FlowRows(t *testing.T) {
	g, err := farm.FromCells(2, 1, [][]int{{1, 2}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, farmfile.Encode(&buf, g, farmfile.YAML))
	assert.Contains(t, buf.String(), "[1, 2]")
	assert.Contains(t, buf.String(), "width: 2")
}

func TestUnknownFormat(t *testing.T) {
	_, err := farmfile.Decode(strings.NewReader("1"), farmfile.Format(7))
	assert.ErrorIs(t, err, farmfile.ErrUnknownFormat)

	g, _ := farm.NewGrid(1, 1)
	assert.ErrorIs(t, farmfile.Encode(&bytes.Buffer{}, g, farmfile.Format(7)), farmfile.ErrUnknownFormat)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	g, err := farm.FromCells(4, 3, ringCodes)
	require.NoError(t, err)

	for _, name := range []string{"plot.txt", "plot.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, farmfile.Save(path, g))
		back, err := farmfile.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, g.Codes(), back.Codes(), name)
	}

	_, err = farmfile.Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

package farmfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gardencraft/farm"
)

// document is the YAML layout of a grid.
type document struct {
	Width  int   `yaml:"width,omitempty"`
	Height int   `yaml:"height,omitempty"`
	Cells  []row `yaml:"cells"`
}

// row is one grid row; it is written in flow style ("[1, 2, 1]").
type row []int

// MarshalYAML implements yaml.Marshaler.
func (r row) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, code := range r {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(code)})
	}

	return n, nil
}

// Decode reads one grid from r in format f.
func Decode(r io.Reader, f Format) (*farm.Grid, error) {
	switch f {
	case Text:
		return decodeText(r)
	case YAML:
		return decodeYAML(r)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "decode %d", int(f))
	}
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *farm.Grid, f Format) error {
	switch f {
	case Text:
		_, err := fmt.Fprintln(w, g.String())
		return errors.Wrap(err, "farmfile: write text")
	case YAML:
		doc := document{Width: g.Width(), Height: g.Height()}
		for _, codes := range g.Codes() {
			doc.Cells = append(doc.Cells, codes)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return errors.Wrap(err, "farmfile: write yaml")
		}
		return errors.Wrap(enc.Close(), "farmfile: write yaml")
	default:
		return errors.Wrapf(ErrUnknownFormat, "encode %d", int(f))
	}
}

// Load reads a grid from the file at path; the format follows the extension
// (see FormatFor).
func Load(path string) (*farm.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %q for reading", path)
	}
	defer file.Close()

	g, err := Decode(file, FormatFor(path))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to load grid from %q", path)
	}

	return g, nil
}

// Save writes g to the file at path; the format follows the extension (see
// FormatFor). The grid is written to a temporary file in the same directory
// which then replaces path, so a failed save leaves any existing file intact.
func Save(path string, g *farm.Grid) error {
	return save(path, g, FormatFor(path))
}

func save(path string, g *farm.Grid, f Format) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file for %q", path)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return errors.Wrapf(err, "failed to set mode of %q", tmp.Name())
	}
	if err = Encode(tmp, g, f); err != nil {
		return errors.WithMessagef(err, "failed to save grid to %q", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %q", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "failed renaming %q to %q", tmp.Name(), path)
	}

	return nil
}

func decodeYAML(r io.Reader) (*farm.Grid, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(farm.ErrInvalidDimensions, "farmfile: empty yaml document")
		}
		return nil, errors.Wrapf(ErrSyntax, "yaml: %v", err)
	}
	width, height := doc.Width, doc.Height
	if height == 0 {
		height = len(doc.Cells)
	}
	if width == 0 && len(doc.Cells) > 0 {
		width = len(doc.Cells[0])
	}
	data := make([][]int, len(doc.Cells))
	for i, cells := range doc.Cells {
		data[i] = cells
	}
	g, err := farm.FromCells(width, height, data)
	if err != nil {
		return nil, errors.WithMessage(err, "farmfile: yaml cells")
	}

	return g, nil
}

func decodeText(r io.Reader) (*farm.Grid, error) {
	var data [][]int
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes, err := parseRow(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "farmfile: line %d", lineNo)
		}
		data = append(data, codes)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "farmfile: read text")
	}

	width := 0
	if len(data) > 0 {
		width = len(data[0])
	}
	g, err := farm.FromCells(width, len(data), data)
	if err != nil {
		return nil, errors.WithMessage(err, "farmfile: text rows")
	}

	return g, nil
}

// parseRow splits a text row into codes. A single run of digits is read one
// digit per cell; otherwise tokens are separated by spaces or commas.
func parseRow(line string) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 1 && len(fields[0]) > 1 && isDigits(fields[0]) {
		codes := make([]int, len(fields[0]))
		for i, ch := range fields[0] {
			codes[i] = int(ch - '0')
		}
		return codes, nil
	}

	codes := make([]int, len(fields))
	for i, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "cell %d: %q is not an integer", i, tok)
		}
		codes[i] = v
	}

	return codes, nil
}

func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	return true
}

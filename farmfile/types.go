package farmfile

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format selects the on-disk representation of a grid.
type Format int

const (
	// Text is the line-per-row digit format.
	Text Format = iota
	// YAML is the width/height/cells document format.
	YAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownFormat indicates a Format value that is neither Text nor YAML.
	ErrUnknownFormat = errors.New("farmfile: unknown format")
	// ErrSyntax indicates input that cannot be read as grid rows.
	ErrSyntax = errors.New("farmfile: syntax error")
)

// FormatFor picks the format from a file name: ".yaml" and ".yml" are YAML,
// anything else is Text.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return Text
	}
}

// Package export writes the session log to CSV, JSON or YAML files.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sadopc/antiprocrastinator/internal/store"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the accepted file extensions.
var Formats = []string{"csv", "json", "yaml"}

// FormatOf maps a file name to one of Formats by extension.
func FormatOf(path string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "csv", "json":
		return ext, nil
	case "yaml", "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %q (use .csv, .json or .yaml)", ErrUnknownFormat, filepath.Ext(path))
	}
}

// ToFile writes sessions in the format chosen by the extension of path.
func ToFile(sessions []store.Session, quotes []string, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	switch format {
	case "csv":
		return ToCSV(sessions, quotes, path)
	case "json":
		return ToJSON(sessions, quotes, path)
	default:
		return ToYAML(sessions, quotes, path)
	}
}

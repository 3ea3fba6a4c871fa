// Package validation checks user-supplied output targets before any work starts.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Summary formats accepted by IsValidOutputFormat.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// IsValidOutputFormat checks if the given summary format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case FormatYAML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported summary format: %s. Supported formats are 'yaml', 'json'", format)
	}
}

// IsValidOutputPath checks that path can be created or overwritten as a
// regular file. When extensions are given, the path must end in one of them
// (case-insensitive).
func IsValidOutputPath(path string, extensions ...string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("output path is a directory: %s", path)
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if len(extensions) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return nil
		}
	}
	return fmt.Errorf("output path %s must end in %s", path, strings.Join(extensions, " or "))
}

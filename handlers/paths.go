// handlers/paths.go
package handlers

import (
	"path/filepath"

	"github.com/gewnthar/flightqa/apperrors"
	"github.com/gewnthar/flightqa/config"
)

// resolveDataPath maps a client-supplied file name into the directory of the configured
// output file. Absolute names and names escaping that directory are rejected.
func resolveDataPath(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", apperrors.Parameter("path %q must be relative to the output directory and must not contain '..'", name)
	}
	return filepath.Join(filepath.Dir(config.AppConfig.Output.Path), name), nil
}

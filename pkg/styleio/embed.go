package styleio

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed embedded/starter.yaml
var starterContent []byte

// Starter returns the embedded starter style document, a commented YAML
// file users copy and edit.
func Starter() string {
	return string(starterContent)
}

// WriteStarter writes the starter document to path, creating parent
// directories as needed. An existing file is never overwritten.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("style file already exists at %s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, starterContent, 0644); err != nil {
		return fmt.Errorf("failed to write style file to %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("Written starter style file")
	return nil
}

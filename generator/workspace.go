package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// WorkspaceMarker identifies a workspace root.
const WorkspaceMarker = "package.json"

// FindWorkspace walks up from start to the nearest directory containing
// package.json.
func FindWorkspace(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("error getting absolute path: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, WorkspaceMarker)); err == nil {
			slog.Debug("Found workspace", "root", dir)
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoWorkspace
		}
		dir = parent
	}
}

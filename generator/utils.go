package generator

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"carve/config"
)

// UtilSource is the runtime counterpart of the cn(...) calls emitted by the
// rewriter.
const UtilSource = `export function cn(...classes) {
  return classes.filter(Boolean).join(' ');
}
`

// EnsureUtil creates the cn helper module under root if it is missing.
// It never overwrites an existing helper and reports whether it wrote one.
func EnsureUtil(fsys FS, root string, cfg *config.Config) (bool, error) {
	utilPath := filepath.Join(root, cfg.UtilPath)

	exists, err := fsys.Exists(utilPath)
	if err != nil {
		return false, fmt.Errorf("failed to stat helper module: %w", err)
	}
	if exists {
		slog.Debug("Helper module present", "path", utilPath)
		return false, nil
	}

	if err := fsys.MkdirAll(filepath.Dir(utilPath)); err != nil {
		return false, &WriteError{Path: utilPath, Err: err}
	}
	if err := fsys.WriteFile(utilPath, []byte(UtilSource)); err != nil {
		return false, &WriteError{Path: utilPath, Err: err}
	}

	slog.Debug("Created helper module", "path", utilPath)
	return true, nil
}

// helperImport returns the module specifier for the helper as imported from
// a file in componentsDir, e.g. "../lib/utils".
func helperImport(componentsDir, utilPath string) string {
	target := strings.TrimSuffix(utilPath, filepath.Ext(utilPath))
	rel, err := filepath.Rel(componentsDir, target)
	if err != nil {
		return ""
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}

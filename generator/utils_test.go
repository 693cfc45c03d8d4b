package generator

import (
	"os"
	"path/filepath"
	"testing"

	"carve/config"
)

func TestEnsureUtil_OSFS(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()

	created, err := EnsureUtil(OSFS{}, root, cfg)
	if err != nil {
		t.Fatalf("EnsureUtil() error: %v", err)
	}
	if !created {
		t.Error("first call should create the helper")
	}

	data, err := os.ReadFile(filepath.Join(root, "src", "lib", "utils.js"))
	if err != nil {
		t.Fatalf("helper not written: %v", err)
	}
	if string(data) != UtilSource {
		t.Errorf("helper content = %q", data)
	}

	created, err = EnsureUtil(OSFS{}, root, cfg)
	if err != nil {
		t.Fatalf("second EnsureUtil() error: %v", err)
	}
	if created {
		t.Error("second call should be a no-op")
	}
}

func TestOSFS_WriteFileIsExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jsx")
	if err := (OSFS{}).WriteFile(path, []byte("one")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if err := (OSFS{}).WriteFile(path, []byte("two")); !os.IsExist(err) {
		t.Errorf("expected exist error, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "one" {
		t.Errorf("file overwritten: %q", data)
	}
}

func TestHelperImport(t *testing.T) {
	tests := []struct {
		name          string
		componentsDir string
		utilPath      string
		expected      string
	}{
		{"default_layout", "/ws/src/reuseComponents", "/ws/src/lib/utils.js", "../lib/utils"},
		{"nested", "/ws/app/components/shared", "/ws/app/lib/cn.ts", "../../lib/cn"},
		{"same_dir", "/ws/src/ui", "/ws/src/ui/cn.js", "./cn"},
		{"child_dir", "/ws/src", "/ws/src/lib/utils.js", "./lib/utils"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := helperImport(tt.componentsDir, tt.utilPath); got != tt.expected {
				t.Errorf("helperImport() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFindWorkspace(t *testing.T) {
	root := t.TempDir()
	if err := CreateTestWorkspace(root); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "pages")
	os.MkdirAll(nested, 0755)

	got, err := FindWorkspace(nested)
	if err != nil {
		t.Fatalf("FindWorkspace() error: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindWorkspace() = %q, want %q", got, want)
	}
}

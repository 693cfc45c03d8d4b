package generator

import (
	"errors"
	"io/fs"
	"os"
)

// FS is the file-system capability the generator writes through.
type FS interface {
	Exists(path string) (bool, error)
	MkdirAll(path string) error
	// WriteFile creates path and writes data. It fails with fs.ErrExist if
	// path is already present.
	WriteFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
}

// OSFS is FS backed by the operating system.
type OSFS struct{}

func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (OSFS) WriteFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

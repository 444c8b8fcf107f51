package display

import (
	"fmt"
	"os"
	"path/filepath"
)

// File keeps the latest frame in a single file on disk.
type File struct {
	Path string
	// Wait writes the new frame to a temporary file and renames it over
	// Path, so readers never see a truncated document.
	Wait bool
}

func NewFile(path string, wait bool) *File {
	return &File{Path: path, Wait: wait}
}

func (f *File) Show(fr Frame) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	if !f.Wait {
		if err := os.WriteFile(f.Path, fr.Data, 0o644); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		return nil
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp frame: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(fr.Data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp frame: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp frame: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp frame: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("replacing frame: %w", err)
	}
	return nil
}

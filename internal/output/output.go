// Package output writes rendered images to disk without leaving partial files.
package output

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/k1LoW/errors"
)

const dirPerm = 0o755

// ErrDirSync is returned, wrapped, when the file was renamed into place but
// its parent directory could not be synced. The file at path is complete.
var ErrDirSync = errors.New("sync output directory")

// syncDir is replaced in tests.
var syncDir = fsyncDir

// WriteFile creates the parent directories of path, streams write into a
// temporary file next to it and renames it over path. On failure the
// temporary file is removed and path is left untouched, except for an
// ErrDirSync failure, which happens after the rename.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	if err := syncDir(dir); err != nil {
		return fmt.Errorf("%w: %w", ErrDirSync, err)
	}
	return nil
}

// WritePNG encodes img as PNG to path.
func WritePNG(path string, img image.Image) error {
	return WriteFile(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

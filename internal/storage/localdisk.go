package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Disk stores uploaded files under a single directory with generated
// names, so two requests never write the same path.
type Disk struct {
	dir string
}

func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir failed: %w", err)
	}
	return &Disk{dir: dir}, nil
}

func (d *Disk) Dir() string {
	return d.dir
}

// Save writes the uploaded file to disk under a uuid-based name and
// returns the generated filename and its full path.
func (d *Disk) Save(fh *multipart.FileHeader) (string, string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	path := filepath.Join(d.dir, filename)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("create upload file failed: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", "", fmt.Errorf("write upload file failed: %w", err)
	}
	return filename, path, nil
}

func (d *Disk) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file failed: %w", err)
	}
	return nil
}

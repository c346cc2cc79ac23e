package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func multipartFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	if len(files) != 1 {
		t.Fatalf("expected one file header, got %d", len(files))
	}
	return files[0]
}

func TestDisk_SaveAndRemove(t *testing.T) {
	t.Parallel()

	disk, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("NewDisk error: %v", err)
	}

	fh := multipartFileHeader(t, "image", "photo.JPG", []byte("fake-jpeg-bytes"))
	filename, path, err := disk.Save(fh)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if !strings.HasSuffix(filename, ".jpg") {
		t.Fatalf("expected lowercased extension, got %q", filename)
	}
	if filepath.Dir(path) != disk.Dir() {
		t.Fatalf("file saved outside upload dir: %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "fake-jpeg-bytes" {
		t.Fatalf("saved content mismatch: %q", data)
	}

	if err := disk.Remove(path); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("file still exists after Remove")
	}

	// Removing an already-gone path is not an error.
	if err := disk.Remove(path); err != nil {
		t.Fatalf("Remove of missing file errored: %v", err)
	}
}

func TestDisk_SaveGeneratesUniqueNames(t *testing.T) {
	t.Parallel()

	disk, err := NewDisk(t.TempDir())
	if err != nil {
		t.Fatalf("NewDisk error: %v", err)
	}

	fh := multipartFileHeader(t, "image", "same.png", []byte("content"))
	first, _, err := disk.Save(fh)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	second, _, err := disk.Save(fh)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if first == second {
		t.Fatal("two uploads of the same original name collided")
	}
}

package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Disk stores uploaded files in a per-user directory tree under root.
type Disk struct {
	root string
}

// NewDisk creates a disk store rooted at the given directory
func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

// Save writes src into the owner's directory and returns the final path
func (d *Disk) Save(userID int64, filename string, src io.Reader) (string, error) {
	dir := filepath.Join(d.root, strconv.FormatInt(userID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create user directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// Don't leave a truncated file behind
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// Remove deletes a stored file; a missing file counts as already removed
func (d *Disk) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

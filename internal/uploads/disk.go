// Package uploads stores resume files on the local disk when no S3
// bucket is configured.
package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &DiskStore{Dir: dir}, nil
}

// Save writes the file under a uuid-prefixed name and returns its path.
func (s *DiskStore) Save(_ context.Context, file io.Reader, filename, _ string) (string, error) {
	name := fmt.Sprintf("%s-%s", uuid.New().String()[:8], filepath.Base(filename))
	path := filepath.Join(s.Dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return path, nil
}

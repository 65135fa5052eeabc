package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiskStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resumes")
	_, err := NewDiskStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveWritesFileWithUniquePrefix(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(context.Background(), strings.NewReader("%PDF-1.4 resume"), "resume.pdf", "application/pdf")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, "-resume.pdf"))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 resume", string(content))

	// A second save of the same filename must not collide.
	other, err := store.Save(context.Background(), strings.NewReader("second"), "resume.pdf", "application/pdf")
	require.NoError(t, err)
	assert.NotEqual(t, path, other)
}

func TestSaveStripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), strings.NewReader("x"), "../escape.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
}

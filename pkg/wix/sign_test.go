package wix

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewestMsi(t *testing.T) {
	dir := t.TempDir()
	older := writeFile(t, filepath.Join(dir, "hello-1.2.2-x86_64.msi"))
	newer := writeFile(t, filepath.Join(dir, "hello-1.2.3-x86_64.msi"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	now := time.Now()
	require.NoError(t, os.Chtimes(older, now.Add(-time.Hour), now.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(newer, now, now))

	msi, err := newestMsi(dir)
	require.NoError(t, err)
	assert.Equal(t, newer, msi)
}

func TestNewestMsiMissing(t *testing.T) {
	_, err := newestMsi(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consider running 'gowix create' first")

	_, err = newestMsi(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consider running 'gowix create' first")
}

func TestSignMissingInstaller(t *testing.T) {
	manifest := writeManifest(t, "[package]\nname = \"hello\"\n")

	err := Sign(context.Background(), SignOptions{
		Input: manifest.Path(),
		Msi:   filepath.Join(t.TempDir(), "missing.msi"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be found")
}

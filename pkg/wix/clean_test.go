package wix

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	manifest := writeManifest(t, "[package]\nname = \"hello\"\n")
	buildDir := filepath.Join(manifest.Root(), TargetFolderName, SourceFolderName)
	wixDir := filepath.Join(manifest.Root(), SourceFolderName)
	require.NoError(t, os.MkdirAll(buildDir, 0o755))
	require.NoError(t, os.MkdirAll(wixDir, 0o755))
	writeFile(t, filepath.Join(buildDir, "hello-1.2.3-x86_64.msi"))
	writeFile(t, filepath.Join(wixDir, "main.wxs"))

	require.NoError(t, Clean(context.Background(), CleanOptions{Input: manifest.Path()}))

	assert.NoDirExists(t, buildDir)
	assert.DirExists(t, wixDir)
}

func TestCleanNothingToRemove(t *testing.T) {
	manifest := writeManifest(t, "[package]\nname = \"hello\"\n")

	require.NoError(t, Clean(context.Background(), CleanOptions{Input: manifest.Path()}))
}

func TestPurge(t *testing.T) {
	manifest := writeManifest(t, "[package]\nname = \"hello\"\n")
	buildDir := filepath.Join(manifest.Root(), TargetFolderName, SourceFolderName)
	wixDir := filepath.Join(manifest.Root(), SourceFolderName)
	require.NoError(t, os.MkdirAll(buildDir, 0o755))
	require.NoError(t, os.MkdirAll(wixDir, 0o755))
	writeFile(t, filepath.Join(wixDir, "main.wxs"))
	writeFile(t, filepath.Join(wixDir, "License.rtf"))

	require.NoError(t, Purge(context.Background(), CleanOptions{Input: manifest.Path()}))

	assert.NoDirExists(t, buildDir)
	assert.NoDirExists(t, wixDir)
	assert.FileExists(t, manifest.Path())
}

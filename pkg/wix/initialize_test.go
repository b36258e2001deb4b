package wix

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	manifest := writeManifest(t, printManifest)

	err := Init(context.Background(), InitOptions{WxsOptions: WxsOptions{Input: manifest.Path()}})
	require.NoError(t, err)

	wxsPath := filepath.Join(manifest.Root(), SourceFolderName, "main.wxs")
	rtfPath := filepath.Join(manifest.Root(), SourceFolderName, "License.rtf")
	assert.FileExists(t, wxsPath)
	assert.FileExists(t, rtfPath)

	content, err := os.ReadFile(wxsPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Name='hello'")

	rtf, err := os.ReadFile(rtfPath)
	require.NoError(t, err)
	assert.Contains(t, string(rtf), "Ada Lovelace")
}

func TestInitRefusesExistingWxs(t *testing.T) {
	manifest := writeManifest(t, printManifest)

	opts := InitOptions{WxsOptions: WxsOptions{Input: manifest.Path()}}
	require.NoError(t, Init(context.Background(), opts))

	err := Init(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use the '--force' flag")

	opts.Force = true
	require.NoError(t, Init(context.Background(), opts))
}

func TestInitWithoutLicense(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"
version = "1.2.3"
authors = ["Ada Lovelace"]
`)

	err := Init(context.Background(), InitOptions{WxsOptions: WxsOptions{Input: manifest.Path()}})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(manifest.Root(), SourceFolderName, "main.wxs"))
	assert.NoFileExists(t, filepath.Join(manifest.Root(), SourceFolderName, "License.rtf"))
}

func TestInitKeepsExistingSidecar(t *testing.T) {
	manifest := writeManifest(t, printManifest)
	wixDir := filepath.Join(manifest.Root(), SourceFolderName)
	require.NoError(t, os.MkdirAll(wixDir, 0o755))

	rtfPath := filepath.Join(wixDir, "License.rtf")
	require.NoError(t, os.WriteFile(rtfPath, []byte("custom terms"), 0o644))

	err := Init(context.Background(), InitOptions{WxsOptions: WxsOptions{Input: manifest.Path()}})
	require.NoError(t, err)

	content, err := os.ReadFile(rtfPath)
	require.NoError(t, err)
	assert.Equal(t, "custom terms", string(content))
}

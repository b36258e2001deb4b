package wix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeManifest drops a gowix.toml with the given content into a fresh temp
// folder and loads it.
func writeManifest(t *testing.T, content string) *Manifest {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	manifest, err := LoadManifest(path)
	require.NoError(t, err)
	return manifest
}

func TestLoadManifestFromFolder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte("[package]\nname = \"hello\"\n"), 0o644))

	manifest, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, path, manifest.Path())
	assert.Equal(t, dir, manifest.Root())
}

func TestLoadManifestMissing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), ManifestFileName))
	require.Error(t, err)
}

func TestManifestNamePrecedence(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"

[wix]
name = "howdy"
`)

	name, err := manifest.Name("")
	require.NoError(t, err)
	assert.Equal(t, "howdy", name)

	name, err = manifest.Name("different")
	require.NoError(t, err)
	assert.Equal(t, "different", name)
}

func TestManifestNameMissing(t *testing.T) {
	manifest := writeManifest(t, "[package]\nversion = \"0.1.0\"\n")

	_, err := manifest.Name("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'name' field is missing")
}

func TestManifestProductName(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"

[wix]
product-name = "Hello World"
`)

	name, err := manifest.ProductName("")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", name)

	name, err = manifest.ProductName("Howdy")
	require.NoError(t, err)
	assert.Equal(t, "Howdy", name)
}

func TestManifestVersion(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"
version = "1.2.3"

[wix]
version = "2.0.0"
`)

	version, err := manifest.Version("")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", version)

	version, err = manifest.Version("3.0.0")
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", version)

	missing := writeManifest(t, "[package]\nname = \"hello\"\n")
	_, err = missing.Version("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'version' field is missing")
}

func TestManifestManufacturer(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"
authors = ["Ada Lovelace <ada@example.com>", "Charles Babbage"]
`)

	manufacturer, err := manifest.Manufacturer("")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", manufacturer)

	manufacturer, err = manifest.Manufacturer("Example Corp")
	require.NoError(t, err)
	assert.Equal(t, "Example Corp", manufacturer)

	missing := writeManifest(t, "[package]\nname = \"hello\"\n")
	_, err = missing.Manufacturer("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'authors' field is missing")
}

func TestManifestHelpURL(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"
homepage = "https://example.com"
repository = "https://example.com/repo"
`)

	assert.Equal(t, "https://example.com", manifest.HelpURL(""))
	assert.Equal(t, "https://other.example.com", manifest.HelpURL("https://other.example.com"))

	documented := writeManifest(t, `
[package]
name = "hello"
documentation = "https://docs.example.com"
homepage = "https://example.com"
`)
	assert.Equal(t, "https://docs.example.com", documented.HelpURL(""))

	repoOnly := writeManifest(t, `
[package]
name = "hello"
repository = "https://example.com/repo"
`)
	assert.Equal(t, "https://example.com/repo", repoOnly.HelpURL(""))

	bare := writeManifest(t, "[package]\nname = \"hello\"\n")
	assert.Equal(t, "", bare.HelpURL(""))

	assert.Equal(t, "https://example.com", manifest.Homepage(""))
	assert.Equal(t, "", repoOnly.Homepage(""))
}

func TestManifestBooleans(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"

[wix]
no-build = true
dbg-build = true
`)

	assert.True(t, manifest.NoBuild(false))
	assert.True(t, manifest.DebugBuild(false))
	assert.False(t, manifest.DebugName(false))
	assert.True(t, manifest.DebugName(true))
}

func TestManifestSlices(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"

[wix]
compiler-args = ["-nologo"]
linker-args = ["-nologo", "-v"]
include = ["extra/custom.wxs"]
`)

	assert.Equal(t, []string{"-nologo"}, manifest.CompilerArgs(nil))
	assert.Equal(t, []string{"-nologo", "-v"}, manifest.LinkerArgs(nil))
	assert.Equal(t, []string{"extra/custom.wxs"}, manifest.Includes(nil))

	assert.Equal(t, []string{"-wx"}, manifest.CompilerArgs([]string{"-wx"}))
}

func TestManifestHooks(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"

[wix.hooks]
pre = "echo before"
post = "echo after"
`)

	assert.Equal(t, "echo before", manifest.Hook("pre"))
	assert.Equal(t, "echo after", manifest.Hook("post"))
	assert.Equal(t, "", manifest.Hook("between"))
}

func TestManifestBinariesDefault(t *testing.T) {
	manifest := writeManifest(t, "[package]\nname = \"hello\"\n")

	binaries, err := manifest.Binaries(nil)
	require.NoError(t, err)
	require.Len(t, binaries, 1)
	assert.Equal(t, 0, binaries[0].Index)
	assert.Equal(t, "hello", binaries[0].Name)
	assert.Equal(t, ".", binaries[0].Package)
	assert.Equal(t, filepath.Join("target", "$(var.Profile)", "hello.exe"), binaries[0].Source)
}

func TestManifestBinariesSections(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"

[[bin]]
name = "first"
path = "./cmd/first"

[[bin]]
name = "second"
`)

	binaries, err := manifest.Binaries(nil)
	require.NoError(t, err)
	require.Len(t, binaries, 2)

	assert.Equal(t, "first", binaries[0].Name)
	assert.Equal(t, "./cmd/first", binaries[0].Package)
	assert.Equal(t, filepath.Join("target", "$(var.Profile)", "first.exe"), binaries[0].Source)

	assert.Equal(t, 1, binaries[1].Index)
	assert.Equal(t, "second", binaries[1].Name)
	assert.Equal(t, ".", binaries[1].Package)
}

func TestManifestBinariesSectionMissingName(t *testing.T) {
	manifest := writeManifest(t, `
[package]
name = "hello"

[[bin]]
path = "./cmd/first"
`)

	_, err := manifest.Binaries(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing the 'name' field")
}

func TestManifestBinariesOverride(t *testing.T) {
	manifest := writeManifest(t, "[package]\nname = \"hello\"\n")

	binaries, err := manifest.Binaries([]string{"out/tool.exe", "other/second.exe"})
	require.NoError(t, err)
	require.Len(t, binaries, 2)

	assert.Equal(t, "tool", binaries[0].Name)
	assert.Equal(t, "out/tool.exe", binaries[0].Source)
	assert.Equal(t, "second", binaries[1].Name)
	assert.Equal(t, 1, binaries[1].Index)
}

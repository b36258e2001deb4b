// Package wix implements the gowix pipeline: rendering WiX Source (wxs)
// files from a project manifest and turning them into a Windows installer
// (msi) with the WiX Toolset's compiler (candle.exe) and linker (light.exe).
//
// Every command reads its defaults from the project's gowix.toml manifest.
// Values passed explicitly (command line flags) always win over manifest
// entries, which in turn win over built-in defaults.
package wix

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
)

const (
	// ManifestFileName is the name of the project manifest.
	ManifestFileName = "gowix.toml"

	// SourceFolderName is the project folder that holds WiX Source files.
	SourceFolderName = "wix"

	// TargetFolderName is the build output folder.
	TargetFolderName = "target"

	// BinaryFolderName is the folder inside a WiX Toolset installation that
	// contains candle.exe and light.exe.
	BinaryFolderName = "bin"

	// WixPathVar is the system environment variable created by the WiX
	// Toolset installer. It points at the installation root.
	WixPathVar = "WIX"

	compilerName = "candle"
	linkerName   = "light"
	signerName   = "signtool"

	exeExtension    = ".exe"
	msiExtension    = ".msi"
	wxsExtension    = ".wxs"
	wixobjExtension = ".wixobj"
	rtfExtension    = ".rtf"

	licenseFileName = "License"
)

// manifestPath resolves the path to a project manifest. An empty input means
// the current working directory. A directory gets the manifest file name
// appended. The returned path is not guaranteed to exist.
func manifestPath(input string) (string, error) {
	if input == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", eris.Wrap(err, "failed to retrieve the current working directory")
		}
		return filepath.Join(wd, ManifestFileName), nil
	}

	info, err := os.Stat(input)
	if err == nil && info.IsDir() {
		return filepath.Join(input, ManifestFileName), nil
	}

	return input, nil
}

func currentYear() string {
	return strconv.Itoa(time.Now().Year())
}

// destination opens the output for a rendered template. An empty path means
// stdout. A directory path is an error; parent folders are not created.
func destination(output string) (*os.File, func() error, error) {
	if output == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(output)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "failed to create %s", output)
	}
	return f, f.Close, nil
}

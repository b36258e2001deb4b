package wix

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/Coding-Badly/gowix/pkg/wix/templates"
)

// EulaKind describes how the license agreement dialog is sourced.
type EulaKind int

const (
	// EulaDisabled skips the license agreement dialog entirely.
	EulaDisabled EulaKind = iota
	// EulaCommandLine uses an RTF file given explicitly.
	EulaCommandLine
	// EulaManifest uses the manifest's license-file, which must be an RTF.
	EulaManifest
	// EulaGenerate renders an embedded RTF template for a known license id.
	EulaGenerate
)

// Eula is the resolved license agreement source for an installer.
type Eula struct {
	Kind EulaKind
	// Path is the RTF location for the CommandLine and Manifest kinds and
	// the sidecar file name for the Generate kind.
	Path string
	// LicenseID is the SPDX id for the Generate kind.
	LicenseID string
}

// String returns the value rendered into the WixUILicenseRtf variable.
func (e Eula) String() string {
	return e.Path
}

// ResolveEula determines the EULA for the installer. Precedence: an explicit
// path (flag or [wix] eula, any extension, must exist), then an existing RTF
// from the manifest's license-file field, then a generated sidecar for a
// recognized license id. Anything else disables the license dialog.
func ResolveEula(ctx context.Context, store *templates.Store, override string, manifest *Manifest) (Eula, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return Eula{}, eris.Wrapf(err, "the '%s' EULA file could not be found, or it does not exist", override)
		}
		return Eula{Kind: EulaCommandLine, Path: override}, nil
	}

	if licenseFile := manifest.LicenseFile(); licenseFile != "" {
		if strings.EqualFold(filepath.Ext(licenseFile), rtfExtension) {
			if _, err := os.Stat(licenseFile); err == nil {
				return Eula{Kind: EulaManifest, Path: licenseFile}, nil
			}
			log(ctx).Debug().
				Str("path", licenseFile).
				Msg("the 'license-file' field points at a missing RTF file")
		}
	}

	if id := manifest.License(); id != "" && store.Has(templates.License(id)) {
		return Eula{
			Kind:      EulaGenerate,
			Path:      filepath.Join(SourceFolderName, licenseFileName+rtfExtension),
			LicenseID: id,
		}, nil
	}

	return Eula{Kind: EulaDisabled}, nil
}

// licenseName resolves the file name of the license sidecar installed next
// to the binaries, or an empty string when there is none.
func licenseName(store *templates.Store, override string, manifest *Manifest) string {
	if override != "" {
		return filepath.Base(override)
	}

	if id := manifest.License(); id != "" && store.Has(templates.License(id)) {
		return licenseFileName + rtfExtension
	}

	if licenseFile := manifest.LicenseFile(); licenseFile != "" {
		return filepath.Base(licenseFile)
	}

	return ""
}

// licenseSource resolves the path candle reads the license sidecar from, or
// an empty string when there is none.
func licenseSource(store *templates.Store, override string, manifest *Manifest) string {
	if override != "" {
		return override
	}

	if id := manifest.License(); id != "" && store.Has(templates.License(id)) {
		return filepath.Join(SourceFolderName, licenseFileName+rtfExtension)
	}

	if licenseFile := manifest.LicenseFile(); licenseFile != "" {
		if _, err := os.Stat(licenseFile); err == nil {
			return licenseFile
		}
	}

	return ""
}

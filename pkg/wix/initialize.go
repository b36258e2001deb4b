package wix

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/Coding-Badly/gowix/pkg/wix/templates"
)

// InitOptions configures the init command.
type InitOptions struct {
	WxsOptions

	// Force overwrites existing files.
	Force bool
}

// Init generates the wix folder for a project: the main.wxs skeleton and,
// when the EULA resolution generates one, the RTF license sidecar.
func Init(ctx context.Context, opts InitOptions) error {
	manifest, err := LoadManifest(opts.Input)
	if err != nil {
		return err
	}

	wixDir := filepath.Join(manifest.Root(), SourceFolderName)
	if err := os.MkdirAll(wixDir, 0o755); err != nil {
		return eris.Wrapf(err, "failed to create %s", wixDir)
	}

	wxsPath := filepath.Join(wixDir, "main"+wxsExtension)
	if !opts.Force {
		if _, err := os.Stat(wxsPath); err == nil {
			return eris.Errorf(
				"the '%s' file already exists; use the '--force' flag to overwrite the contents", wxsPath)
		}
	}

	store, err := templates.New()
	if err != nil {
		return err
	}

	eula, err := ResolveEula(ctx, store, manifest.Eula(opts.Eula), manifest)
	if err != nil {
		return err
	}
	if eula.Kind == EulaGenerate {
		rtfPath := filepath.Join(wixDir, licenseFileName+rtfExtension)
		if err := writeLicenseSidecar(ctx, store, manifest, eula.LicenseID, rtfPath, opts.Force); err != nil {
			return err
		}
		log(ctx).Info().Str("path", rtfPath).Msg("created the license sidecar")
	}

	wxsOpts := opts.WxsOptions
	wxsOpts.Output = wxsPath
	if err := PrintWxs(ctx, wxsOpts); err != nil {
		return err
	}

	log(ctx).Info().Str("path", wxsPath).Msg("created the WiX Source file")
	return nil
}

func writeLicenseSidecar(ctx context.Context, store *templates.Store, manifest *Manifest, id, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			log(ctx).Debug().Str("path", path).Msg("keeping the existing license sidecar")
			return nil
		}
	}

	holder, err := manifest.Manufacturer("")
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "failed to create %s", path)
	}

	data := templates.LicenseData{Year: currentYear(), Holder: holder}
	if err := store.Render(f, templates.License(id), data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

package wix

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Timestamp server aliases accepted by the sign command.
var timestampAliases = map[string]string{
	"verisign": "http://timestamp.verisign.com/scripts/timstamp.dll",
	"comodo":   "http://timestamp.comodoca.com/",
}

// SignOptions configures the sign command.
type SignOptions struct {
	// BinPath is the folder containing signtool.exe.
	BinPath string
	// CaptureOutput suppresses signtool's output.
	CaptureOutput bool
	// Description overrides the content description added to the signature
	// (product name plus package description by default).
	Description string
	// HomepageURL is the URL embedded in the signature (/du); the
	// manifest's homepage by default.
	HomepageURL string
	// Input is the path to the project manifest.
	Input string
	// Msi is the installer to sign; the newest MSI under target/wix by
	// default.
	Msi string
	// Timestamp is a timestamp server URL or one of the aliases.
	Timestamp string
}

// Sign adds a digital signature to an installer with signtool, using the
// certificate the tool selects automatically (/a).
func Sign(ctx context.Context, opts SignOptions) error {
	manifest, err := LoadManifest(opts.Input)
	if err != nil {
		return err
	}

	msi := opts.Msi
	if msi == "" {
		msi, err = newestMsi(filepath.Join(manifest.Root(), TargetFolderName, SourceFolderName))
		if err != nil {
			return err
		}
	} else if _, err := os.Stat(msi); err != nil {
		return eris.Wrapf(err, "the '%s' installer could not be found, or it does not exist", msi)
	}

	signer, err := Signer.Locate(ctx, opts.BinPath)
	if err != nil {
		return err
	}

	args := []string{"sign", "/a"}

	description := opts.Description
	if description == "" {
		if productName, err := manifest.ProductName(""); err == nil {
			description = productName
			if packageDescription := manifest.Description(""); packageDescription != "" {
				description += ": " + packageDescription
			}
		}
	}
	if description != "" {
		args = append(args, "/d", description)
	}

	if homepage := manifest.Homepage(opts.HomepageURL); homepage != "" {
		log(ctx).Debug().Str("url", homepage).Msg("adding the homepage URL to the signature")
		args = append(args, "/du", homepage)
	}

	if opts.Timestamp != "" {
		server := opts.Timestamp
		if alias, ok := timestampAliases[strings.ToLower(server)]; ok {
			server = alias
		}
		args = append(args, "/t", server)
	}

	args = append(args, msi)

	log(ctx).Info().Str("path", msi).Msg("signing the installer")
	cmd := exec.CommandContext(ctx, signer, args...)
	cmd.Dir = manifest.Root()
	if err := runCommand(cmd, signerName, opts.CaptureOutput); err != nil {
		return Signer.notFoundHint(err)
	}

	log(ctx).Info().Str("path", msi).Msg("signed the installer")
	return nil
}

// newestMsi picks the most recently modified installer in a folder.
func newestMsi(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", eris.New("no installer could be found; consider running 'gowix create' first")
	}

	var newest string
	var newestMod int64
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), msiExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest = filepath.Join(dir, entry.Name())
			newestMod = mod
		}
	}

	if newest == "" {
		return "", eris.New("no installer could be found; consider running 'gowix create' first")
	}
	return newest, nil
}

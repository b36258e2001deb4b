package wix

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// CleanOptions configures the clean and purge commands.
type CleanOptions struct {
	// Input is the path to the project manifest.
	Input string
}

// Clean removes the installer build output (target/wix). A missing folder
// is not an error.
func Clean(ctx context.Context, opts CleanOptions) error {
	manifest, err := LoadManifest(opts.Input)
	if err != nil {
		return err
	}

	return removeFolder(ctx, filepath.Join(manifest.Root(), TargetFolderName, SourceFolderName))
}

// Purge removes the installer build output and the project's wix source
// folder.
func Purge(ctx context.Context, opts CleanOptions) error {
	manifest, err := LoadManifest(opts.Input)
	if err != nil {
		return err
	}

	if err := removeFolder(ctx, filepath.Join(manifest.Root(), TargetFolderName, SourceFolderName)); err != nil {
		return err
	}
	return removeFolder(ctx, filepath.Join(manifest.Root(), SourceFolderName))
}

func removeFolder(ctx context.Context, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		if eris.Is(err, os.ErrNotExist) {
			log(ctx).Info().Str("path", dir).Msg("nothing to remove")
			return nil
		}
		return eris.Wrapf(err, "failed to check %s", dir)
	}

	if err := os.RemoveAll(dir); err != nil {
		return eris.Wrapf(err, "failed to remove %s", dir)
	}

	log(ctx).Info().Str("path", dir).Msg("removed")
	return nil
}

package wix

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rotisserie/eris"
)

// CreateOptions configures the create command. Zero values defer to the
// manifest and the built-in defaults.
type CreateOptions struct {
	// BinPath is the folder containing candle.exe and light.exe.
	BinPath string
	// CaptureOutput suppresses the output of go, candle, and light.
	CaptureOutput bool
	// CompilerArgs are passed through to candle.
	CompilerArgs []string
	// Culture selects the localized WixUI strings.
	Culture string
	// DebugBuild builds the binaries with the debug profile.
	DebugBuild bool
	// DebugName appends -debug to the installer's file stem.
	DebugName bool
	// Includes adds WXS sources beyond the project's wix folder.
	Includes []string
	// Input is the path to the project manifest.
	Input string
	// LinkerArgs are passed through to light.
	LinkerArgs []string
	// Locale is the path to a WiX localization (wxl) file.
	Locale string
	// Name overrides the installer's base name.
	Name string
	// NoBuild skips building the binaries.
	NoBuild bool
	// Output overrides the installer destination.
	Output string
	// Version overrides the package version.
	Version string
}

// Create builds the project's binaries and turns the WiX Source files into
// a Windows installer.
func Create(ctx context.Context, opts CreateOptions) error {
	manifest, err := LoadManifest(opts.Input)
	if err != nil {
		return err
	}

	name, err := manifest.Name(opts.Name)
	if err != nil {
		return err
	}

	versionText, err := manifest.Version(opts.Version)
	if err != nil {
		return err
	}
	version, err := semver.StrictNewVersion(versionText)
	if err != nil {
		return eris.Wrapf(err, "the '%s' version is not in the major.minor.patch notation", versionText)
	}
	compilerVersion, err := CompilerVersion(version)
	if err != nil {
		return err
	}

	culture := DefaultCulture
	if text := manifest.Culture(opts.Culture); text != "" {
		culture, err = ParseCulture(text)
		if err != nil {
			return err
		}
	}

	locale := manifest.Locale(opts.Locale)
	if locale != "" {
		if _, err := os.Stat(locale); err != nil {
			return eris.Wrapf(err,
				"the '%s' WiX localization file could not be found, or it does not exist", locale)
		}
	}

	platform := DefaultPlatform()
	debugBuild := manifest.DebugBuild(opts.DebugBuild)
	debugName := manifest.DebugName(opts.DebugName)
	noBuild := manifest.NoBuild(opts.NoBuild)
	profile := "release"
	if debugBuild {
		profile = "debug"
	}

	log(ctx).Debug().
		Str("name", name).
		Str("version", compilerVersion).
		Str("culture", culture.String()).
		Str("platform", platform.Name()).
		Str("profile", profile).
		Msg("resolved installer settings")

	if err := runHook(ctx, "pre", manifest.Hook("pre"), manifest.Root(), opts.CaptureOutput); err != nil {
		return err
	}

	if noBuild {
		log(ctx).Warn().Msg("skipped building the binaries")
	} else {
		if err := buildBinaries(ctx, manifest, profile, debugBuild, opts.CaptureOutput); err != nil {
			return err
		}
	}

	wxsSources, err := wxsSources(ctx, manifest, opts.Includes)
	if err != nil {
		return err
	}

	wixobjDest := wixobjDestination(manifest)
	if err := os.MkdirAll(filepath.Dir(wixobjDest), 0o755); err != nil {
		return eris.Wrapf(err, "failed to create %s", wixobjDest)
	}

	log(ctx).Info().Msg("compiling the installer")
	if err := compile(ctx, opts, manifest, profile, compilerVersion, platform, wixobjDest, wxsSources); err != nil {
		return err
	}

	msiDest := msiDestination(manifest, name, versionText, platform, debugName, opts.Output)
	log(ctx).Info().Msg("linking the installer")
	if err := link(ctx, opts, manifest, culture, locale, wixobjDest, msiDest); err != nil {
		return err
	}

	if err := runHook(ctx, "post", manifest.Hook("post"), manifest.Root(), opts.CaptureOutput); err != nil {
		return err
	}

	log(ctx).Info().Str("path", msiDest).Msg("created the installer")
	return nil
}

// buildBinaries runs `go build` for every [[bin]] entry. The release
// profile strips symbols and build paths; the debug profile keeps both.
func buildBinaries(ctx context.Context, manifest *Manifest, profile string, debugBuild, captureOutput bool) error {
	binaries, err := manifest.Binaries(nil)
	if err != nil {
		return err
	}

	outDir := filepath.Join(TargetFolderName, profile)
	for _, binary := range binaries {
		log(ctx).Info().
			Str("binary", binary.Name).
			Msgf("building the %s binary", profile)

		args := []string{"build", "-o", filepath.Join(outDir, binary.Name+exeExtension)}
		if !debugBuild {
			args = append(args, "-trimpath", "-ldflags", "-s -w")
		}
		args = append(args, binary.Package)

		cmd := exec.CommandContext(ctx, "go", args...)
		cmd.Dir = manifest.Root()
		if err := runCommand(cmd, "go", captureOutput); err != nil {
			return err
		}
	}

	return nil
}

// wxsSources collects every WXS file from the project's wix folder plus the
// explicitly included ones. Includes must exist and be files.
func wxsSources(ctx context.Context, manifest *Manifest, includes []string) ([]string, error) {
	projectWixDir := filepath.Join(manifest.Root(), SourceFolderName)

	var sources []string
	entries, err := os.ReadDir(projectWixDir)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), wxsExtension) {
				continue
			}
			sources = append(sources, filepath.Join(projectWixDir, entry.Name()))
		}
	} else if !eris.Is(err, os.ErrNotExist) {
		return nil, eris.Wrapf(err, "failed to read %s", projectWixDir)
	}

	for _, include := range manifest.Includes(includes) {
		info, err := os.Stat(include)
		if err != nil {
			return nil, eris.Errorf(
				"the '%[1]s' file does not exist; consider using the 'gowix print wxs > %[1]s' command to create it", include)
		}
		if info.IsDir() {
			return nil, eris.Errorf(
				"the '%s' path is not a file; please check the path and ensure it is to a WiX Source (wxs) file", include)
		}
		log(ctx).Trace().Str("path", include).Msg("using the included WiX Source file")
		sources = append(sources, include)
	}

	if len(sources) == 0 {
		return nil, eris.New("there are no WXS files to create an installer; consider running 'gowix init' first")
	}
	return sources, nil
}

// wixobjDestination is where candle drops the object files. The trailing
// separator matters: without it candle treats the path as a file name.
func wixobjDestination(manifest *Manifest) string {
	return filepath.Join(manifest.Root(), TargetFolderName, SourceFolderName) + string(os.PathSeparator)
}

// wixobjSources lists the object files produced by candle.
func wixobjSources(wixobjDest string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Dir(wixobjDest))
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read %s", wixobjDest)
	}

	var sources []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), wixobjExtension) {
			sources = append(sources, filepath.Join(filepath.Dir(wixobjDest), entry.Name()))
		}
	}

	if len(sources) == 0 {
		return nil, eris.New("no WiX object files found")
	}
	return sources, nil
}

// msiDestination resolves the installer's output path. A value ending in a
// path separator, or naming an existing folder, keeps the default file name
// inside that folder.
func msiDestination(manifest *Manifest, name, version string, platform Platform, debugName bool, override string) string {
	filename := fmt.Sprintf("%s-%s-%s%s", name, version, platform.Arch(), msiExtension)
	if debugName {
		filename = fmt.Sprintf("%s-%s-%s-debug%s", name, version, platform.Arch(), msiExtension)
	}

	output := manifest.Output(override)
	if output == "" {
		return filepath.Join(manifest.Root(), TargetFolderName, SourceFolderName, filename)
	}

	if strings.HasSuffix(output, "/") || strings.HasSuffix(output, "\\") {
		return filepath.Join(output, filename)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, filename)
	}
	return output
}

func compile(ctx context.Context, opts CreateOptions, manifest *Manifest, profile, version string, platform Platform, wixobjDest string, sources []string) error {
	compiler, err := Compiler.Locate(ctx, opts.BinPath)
	if err != nil {
		return err
	}

	args := []string{
		"-dProfile=" + profile,
		"-dVersion=" + version,
		"-dPlatform=" + platform.Name(),
		"-ext", "WixUtilExtension",
		"-o", wixobjDest,
	}
	args = append(args, manifest.CompilerArgs(opts.CompilerArgs)...)
	args = append(args, sources...)

	cmd := exec.CommandContext(ctx, compiler, args...)
	cmd.Dir = manifest.Root()
	if err := runCommand(cmd, compilerName, opts.CaptureOutput); err != nil {
		return Compiler.notFoundHint(err)
	}
	return nil
}

func link(ctx context.Context, opts CreateOptions, manifest *Manifest, culture Culture, locale, wixobjDest, msiDest string) error {
	linker, err := Linker.Locate(ctx, opts.BinPath)
	if err != nil {
		return err
	}

	objects, err := wixobjSources(wixobjDest)
	if err != nil {
		return err
	}

	args := []string{}
	if locale != "" {
		args = append(args, "-loc", locale)
	}
	args = append(args,
		"-spdb",
		"-ext", "WixUIExtension",
		"-ext", "WixUtilExtension",
		"-cultures:"+culture.String(),
		"-out", msiDest,
		"-b", manifest.Root(),
	)
	args = append(args, manifest.LinkerArgs(opts.LinkerArgs)...)
	args = append(args, objects...)

	cmd := exec.CommandContext(ctx, linker, args...)
	cmd.Dir = manifest.Root()
	if err := runCommand(cmd, linkerName, opts.CaptureOutput); err != nil {
		return Linker.notFoundHint(err)
	}
	return nil
}

// runCommand runs an external program. With capture on, its output is
// swallowed and failures point at the --nocapture flag.
func runCommand(cmd *exec.Cmd, program string, captureOutput bool) error {
	if !captureOutput {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if eris.As(err, &exitErr) {
		if captureOutput {
			return eris.Errorf(
				"the '%s' application failed with exit code %d; use '--nocapture' to see its output",
				program, exitErr.ExitCode())
		}
		return eris.Errorf("the '%s' application failed with exit code %d", program, exitErr.ExitCode())
	}

	return err
}

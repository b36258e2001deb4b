package wix

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/Coding-Badly/gowix/pkg/wix/templates"
)

// WxsOptions configures rendering of the WiX Source skeleton, shared by the
// print and init commands. Zero values defer to the manifest.
type WxsOptions struct {
	// Banner is the path to the 493x58 dialog banner bitmap.
	Banner string
	// Binaries overrides the executables taken from the [[bin]] sections.
	Binaries []string
	// Description overrides the package description.
	Description string
	// Dialog is the path to the 493x312 welcome dialog bitmap.
	Dialog string
	// Eula overrides the RTF shown in the license agreement dialog.
	Eula string
	// HelpURL overrides the URL stored in Add/Remove Programs.
	HelpURL string
	// Input is the path to the project manifest.
	Input string
	// License overrides the license sidecar file.
	License string
	// Manufacturer overrides the first author from the manifest.
	Manufacturer string
	// Output is the render destination; empty means stdout.
	Output string
	// ProductIcon is the icon shown in Add/Remove Programs.
	ProductIcon string
	// ProductName overrides the name shown in Add/Remove Programs.
	ProductName string
}

// PrintWxs renders the WXS skeleton for the project to the output (stdout
// by default).
func PrintWxs(ctx context.Context, opts WxsOptions) error {
	dest, closeDest, err := destination(opts.Output)
	if err != nil {
		return err
	}

	if err := renderWxs(ctx, dest, opts); err != nil {
		_ = closeDest()
		return err
	}
	return closeDest()
}

// renderWxs assembles the template data from the manifest and the overrides
// and renders the skeleton to the writer.
func renderWxs(ctx context.Context, w io.Writer, opts WxsOptions) error {
	manifest, err := LoadManifest(opts.Input)
	if err != nil {
		return err
	}

	store, err := templates.New()
	if err != nil {
		return err
	}

	binaries, err := manifest.Binaries(opts.Binaries)
	if err != nil {
		return err
	}

	productName, err := manifest.ProductName(opts.ProductName)
	if err != nil {
		return err
	}

	manufacturer, err := manifest.Manufacturer(opts.Manufacturer)
	if err != nil {
		return err
	}

	data := templates.WxsData{
		ProductName:       productName,
		Manufacturer:      manufacturer,
		UpgradeCodeGUID:   newGUID(),
		PathComponentGUID: newGUID(),
		Banner:            manifest.Banner(opts.Banner),
		Dialog:            manifest.Dialog(opts.Dialog),
		ProductIcon:       manifest.ProductIcon(opts.ProductIcon),
	}

	for _, binary := range binaries {
		data.Binaries = append(data.Binaries, templates.WxsBinary{
			Index:  binary.Index,
			Name:   binary.Name,
			Source: binary.Source,
		})
	}

	data.Description = manifest.Description(opts.Description)
	if data.Description == "" {
		log(ctx).Warn().Msg(
			"a description was not specified at the command line or in the package's manifest (gowix.toml); it can be added manually to the generated WiX Source (wxs) file with a text editor")
	}

	eula, err := ResolveEula(ctx, store, manifest.Eula(opts.Eula), manifest)
	if err != nil {
		return err
	}
	if eula.Kind == EulaDisabled {
		log(ctx).Warn().Msg(
			"an EULA could not be resolved; the license agreement dialog will be excluded from the installer")
	} else {
		data.Eula = eula.String()
	}

	data.HelpURL = manifest.HelpURL(opts.HelpURL)
	if data.HelpURL == "" {
		log(ctx).Warn().Msg(
			"a help URL could not be found and it will be excluded from the installer")
	}

	data.LicenseName = licenseName(store, opts.License, manifest)
	data.LicenseSource = licenseSource(store, opts.License, manifest)
	if data.LicenseSource == "" {
		log(ctx).Warn().Msg(
			"a license file could not be found and it will be excluded from the installer")
	}

	return store.Render(w, templates.Wxs, data)
}

// newGUID returns an uppercase hyphenated v4 GUID, the form the WiX Toolset
// expects in its identifier attributes.
func newGUID() string {
	return strings.ToUpper(uuid.NewString())
}

// LicenseOptions configures rendering of an RTF license template.
type LicenseOptions struct {
	// ID is the SPDX id of an embedded license template.
	ID string
	// Holder overrides the copyright holder (first author by default).
	Holder string
	// Input is the path to the project manifest.
	Input string
	// Output is the render destination; empty means stdout.
	Output string
	// Year overrides the copyright year (the current year by default).
	Year string
}

// PrintLicense renders one of the embedded RTF license templates.
func PrintLicense(ctx context.Context, opts LicenseOptions) error {
	store, err := templates.New()
	if err != nil {
		return err
	}

	if !store.Has(templates.License(opts.ID)) {
		return eris.Errorf("no embedded template exists for the '%s' license; valid ids: %s",
			opts.ID, strings.Join(store.LicenseIDs(), ", "))
	}

	holder := opts.Holder
	if holder == "" {
		manifest, err := LoadManifest(opts.Input)
		if err != nil {
			return err
		}
		holder, err = manifest.Manufacturer("")
		if err != nil {
			return err
		}
	}

	year := opts.Year
	if year == "" {
		year = currentYear()
	}

	dest, closeDest, err := destination(opts.Output)
	if err != nil {
		return err
	}

	data := templates.LicenseData{Year: year, Holder: holder}
	if err := store.Render(dest, templates.License(opts.ID), data); err != nil {
		_ = closeDest()
		return err
	}
	return closeDest()
}

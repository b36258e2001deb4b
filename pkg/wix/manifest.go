package wix

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Manifest is a loaded gowix.toml project manifest.
//
// The accessors implement the value precedence shared by all commands:
// an explicit override (usually a command line flag) wins over the [wix]
// section, which wins over the [package] section.
type Manifest struct {
	path string
	v    *viper.Viper
}

// Binary describes one installable executable.
type Binary struct {
	// Index keeps the component ids in the rendered WXS stable.
	Index int
	// Name is the executable's file stem.
	Name string
	// Package is the Go package path passed to `go build`.
	Package string
	// Source is the path candle resolves the executable from. It references
	// the Profile preprocessor variable so one WXS serves both profiles.
	Source string
}

// LoadManifest reads the project manifest at the given path. The path may be
// empty (current working directory), a directory, or the manifest file
// itself.
func LoadManifest(input string) (*Manifest, error) {
	path, err := manifestPath(input)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, eris.Wrapf(err, "failed to read the project manifest %s", path)
	}

	return &Manifest{path: path, v: v}, nil
}

// Path returns the path to the manifest file.
func (m *Manifest) Path() string {
	return m.path
}

// Root returns the project root, i.e. the folder containing the manifest.
func (m *Manifest) Root() string {
	return filepath.Dir(m.path)
}

func (m *Manifest) stringValue(override string, keys ...string) string {
	if override != "" {
		return override
	}
	for _, key := range keys {
		if value := m.v.GetString(key); value != "" {
			return value
		}
	}
	return ""
}

// Name returns the installer base name: override > [wix] name > package name.
func (m *Manifest) Name(override string) (string, error) {
	if name := m.stringValue(override, "wix.name", "package.name"); name != "" {
		return name, nil
	}
	return "", eris.New("the 'name' field is missing from the package's manifest (gowix.toml)")
}

// ProductName returns the name shown in Add/Remove Programs.
func (m *Manifest) ProductName(override string) (string, error) {
	if name := m.stringValue(override, "wix.product-name", "package.name"); name != "" {
		return name, nil
	}
	return "", eris.New("the 'name' field is missing from the package's manifest (gowix.toml)")
}

// Version returns the textual version: override > [wix] version > package
// version.
func (m *Manifest) Version(override string) (string, error) {
	if version := m.stringValue(override, "wix.version", "package.version"); version != "" {
		return version, nil
	}
	return "", eris.New("the 'version' field is missing from the package's manifest (gowix.toml)")
}

// Description returns the package description, or an empty string.
func (m *Manifest) Description(override string) string {
	return m.stringValue(override, "package.description")
}

// Manufacturer returns the manufacturer for the installer: the override or
// the first author from the manifest, with any trailing e-mail address
// stripped.
func (m *Manifest) Manufacturer(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	authors := m.v.GetStringSlice("package.authors")
	if len(authors) == 0 {
		return "", eris.New("the 'authors' field is missing from the package's manifest (gowix.toml)")
	}

	author := authors[0]
	if pos := strings.Index(author, "<"); pos > -1 {
		author = author[:pos]
	}
	return strings.TrimSpace(author), nil
}

// HelpURL returns the first of documentation, homepage, and repository, or
// an empty string when none is set.
func (m *Manifest) HelpURL(override string) string {
	return m.stringValue(override,
		"package.documentation", "package.homepage", "package.repository")
}

// Homepage returns the package homepage, or an empty string.
func (m *Manifest) Homepage(override string) string {
	return m.stringValue(override, "package.homepage")
}

// License returns the SPDX license id from the package section.
func (m *Manifest) License() string {
	return m.v.GetString("package.license")
}

// LicenseFile returns the license-file path from the package section.
func (m *Manifest) LicenseFile() string {
	return m.v.GetString("package.license-file")
}

// Culture returns the culture code text for the linker.
func (m *Manifest) Culture(override string) string {
	return m.stringValue(override, "wix.culture")
}

// Locale returns the path to a WiX localization (wxl) file, or empty.
func (m *Manifest) Locale(override string) string {
	return m.stringValue(override, "wix.locale")
}

// Output returns the installer destination override, or empty.
func (m *Manifest) Output(override string) string {
	return m.stringValue(override, "wix.output")
}

// Eula returns the EULA override path, or empty.
func (m *Manifest) Eula(override string) string {
	return m.stringValue(override, "wix.eula")
}

// Banner returns the banner bitmap path, or empty.
func (m *Manifest) Banner(override string) string {
	return m.stringValue(override, "wix.banner")
}

// Dialog returns the dialog bitmap path, or empty.
func (m *Manifest) Dialog(override string) string {
	return m.stringValue(override, "wix.dialog")
}

// ProductIcon returns the product icon path, or empty.
func (m *Manifest) ProductIcon(override string) string {
	return m.stringValue(override, "wix.product-icon")
}

func (m *Manifest) boolValue(override bool, key string) bool {
	if override {
		return true
	}
	return m.v.GetBool(key)
}

// NoBuild reports whether the `go build` step should be skipped.
func (m *Manifest) NoBuild(override bool) bool {
	return m.boolValue(override, "wix.no-build")
}

// DebugBuild reports whether the debug profile should be used.
func (m *Manifest) DebugBuild(override bool) bool {
	return m.boolValue(override, "wix.dbg-build")
}

// DebugName reports whether `-debug` should be appended to the installer's
// file stem.
func (m *Manifest) DebugName(override bool) bool {
	return m.boolValue(override, "wix.dbg-name")
}

func (m *Manifest) stringsValue(override []string, key string) []string {
	if len(override) > 0 {
		return override
	}
	return m.v.GetStringSlice(key)
}

// CompilerArgs returns extra arguments for candle.
func (m *Manifest) CompilerArgs(override []string) []string {
	return m.stringsValue(override, "wix.compiler-args")
}

// LinkerArgs returns extra arguments for light.
func (m *Manifest) LinkerArgs(override []string) []string {
	return m.stringsValue(override, "wix.linker-args")
}

// Includes returns additional WXS source paths.
func (m *Manifest) Includes(override []string) []string {
	return m.stringsValue(override, "wix.include")
}

// Hook returns the named shell hook from [wix.hooks], or empty.
func (m *Manifest) Hook(name string) string {
	return m.v.GetString("wix.hooks." + name)
}

// Binaries returns the executables to build and install. Every [[bin]]
// section contributes one entry; without any, a single binary named after
// the package and built from the project root is assumed.
func (m *Manifest) Binaries(override []string) ([]Binary, error) {
	if len(override) > 0 {
		binaries := make([]Binary, 0, len(override))
		for index, path := range override {
			stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if stem == "" || stem == "." {
				return nil, eris.Errorf("the '%s' binary path does not have a file name", path)
			}
			binaries = append(binaries, Binary{
				Index:   index,
				Name:    stem,
				Package: ".",
				Source:  path,
			})
		}
		return binaries, nil
	}

	if raw := m.v.Get("bin"); raw != nil {
		sections, err := cast.ToSliceE(raw)
		if err != nil {
			return nil, eris.Wrap(err, "the [[bin]] sections of the package's manifest (gowix.toml) are malformed")
		}

		binaries := make([]Binary, 0, len(sections))
		for index, section := range sections {
			table, err := cast.ToStringMapE(section)
			if err != nil {
				return nil, eris.Wrap(err, "the [[bin]] sections of the package's manifest (gowix.toml) are malformed")
			}

			name := cast.ToString(table["name"])
			if name == "" {
				return nil, eris.New("missing the 'name' field for a [[bin]] section in the package's manifest (gowix.toml)")
			}

			pkg := cast.ToString(table["path"])
			if pkg == "" {
				pkg = "."
			}

			binaries = append(binaries, Binary{
				Index:   index,
				Name:    name,
				Package: pkg,
				Source:  defaultBinarySource(name),
			})
		}
		return binaries, nil
	}

	name, err := m.Name("")
	if err != nil {
		return nil, err
	}

	return []Binary{{
		Index:   0,
		Name:    name,
		Package: ".",
		Source:  defaultBinarySource(name),
	}}, nil
}

func defaultBinarySource(name string) string {
	return filepath.Join(TargetFolderName, "$(var.Profile)", name+exeExtension)
}

// Package templates holds the embedded WiX Source (wxs) skeleton and the
// RTF license sidecars gowix can generate.
package templates

import (
	"embed"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
)

//go:embed *.tmpl
var templateFS embed.FS

// Wxs is the name of the WiX Source skeleton template.
const Wxs = "main.wxs"

const licensePrefix = "License-"
const licenseSuffix = ".rtf"

// License returns the template name for an SPDX license id. The returned
// name is only valid if Has reports it.
func License(id string) string {
	return licensePrefix + id + licenseSuffix
}

// WxsBinary is one executable entry rendered into the WXS skeleton.
type WxsBinary struct {
	Index  int
	Name   string
	Source string
}

// WxsData is the data rendered into the WXS skeleton. Empty optional fields
// are omitted from the rendered document.
type WxsData struct {
	ProductName       string
	Manufacturer      string
	Description       string
	UpgradeCodeGUID   string
	PathComponentGUID string
	HelpURL           string
	Eula              string
	LicenseName       string
	LicenseSource     string
	Banner            string
	Dialog            string
	ProductIcon       string
	Binaries          []WxsBinary
}

// LicenseData is the data rendered into an RTF license sidecar.
type LicenseData struct {
	Year   string
	Holder string
}

// Store gives access to the parsed embedded templates.
type Store struct {
	templates map[string]*template.Template
}

// New parses every embedded template.
func New() (*Store, error) {
	store := &Store{templates: make(map[string]*template.Template)}

	entries, err := templateFS.ReadDir(".")
	if err != nil {
		return nil, eris.Wrap(err, "failed to read the embedded template directory")
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		content, err := templateFS.ReadFile(entry.Name())
		if err != nil {
			return nil, eris.Wrapf(err, "failed to read the embedded template %s", entry.Name())
		}

		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return nil, eris.Wrapf(err, "failed to parse the embedded template %s", entry.Name())
		}

		store.templates[name] = tmpl
	}

	return store, nil
}

// Has reports whether the named template exists.
func (s *Store) Has(name string) bool {
	_, ok := s.templates[name]
	return ok
}

// Render writes the named template to the given writer.
func (s *Store) Render(w io.Writer, name string, data interface{}) error {
	tmpl, ok := s.templates[name]
	if !ok {
		return eris.Errorf("the '%s' template does not exist", name)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return eris.Wrapf(err, "failed to render the %s template", name)
	}
	return nil
}

// LicenseIDs returns the SPDX ids an RTF sidecar can be generated for.
func (s *Store) LicenseIDs() []string {
	ids := make([]string, 0, len(s.templates))
	for name := range s.templates {
		if strings.HasPrefix(name, licensePrefix) && strings.HasSuffix(name, licenseSuffix) {
			ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, licensePrefix), licenseSuffix))
		}
	}
	sort.Strings(ids)
	return ids
}

package wix

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// Culture is a culture code recognized by the WixUI extension. It is passed
// to the linker's -cultures switch to select the localized dialog strings.
type Culture string

// DefaultCulture is used when neither the command line nor the manifest
// specifies one.
const DefaultCulture = Culture("en-US")

// cultures maps lowercased culture codes onto the canonical spelling WixUI
// ships localization for.
var cultures = map[string]Culture{
	"ar-sa":      "ar-SA",
	"bg-bg":      "bg-BG",
	"ca-es":      "ca-ES",
	"cs-cz":      "cs-CZ",
	"da-dk":      "da-DK",
	"de-de":      "de-DE",
	"el-gr":      "el-GR",
	"en-us":      "en-US",
	"es-es":      "es-ES",
	"et-ee":      "et-EE",
	"fi-fi":      "fi-FI",
	"fr-fr":      "fr-FR",
	"he-il":      "he-IL",
	"hi-in":      "hi-IN",
	"hr-hr":      "hr-HR",
	"hu-hu":      "hu-HU",
	"it-it":      "it-IT",
	"ja-jp":      "ja-JP",
	"kk-kz":      "kk-KZ",
	"ko-kr":      "ko-KR",
	"lt-lt":      "lt-LT",
	"lv-lv":      "lv-LV",
	"nb-no":      "nb-NO",
	"nl-nl":      "nl-NL",
	"pl-pl":      "pl-PL",
	"pt-br":      "pt-BR",
	"pt-pt":      "pt-PT",
	"ro-ro":      "ro-RO",
	"ru-ru":      "ru-RU",
	"sk-sk":      "sk-SK",
	"sl-si":      "sl-SI",
	"sr-latn-cs": "sr-Latn-CS",
	"sv-se":      "sv-SE",
	"th-th":      "th-TH",
	"tr-tr":      "tr-TR",
	"uk-ua":      "uk-UA",
	"zh-cn":      "zh-CN",
	"zh-hk":      "zh-HK",
	"zh-tw":      "zh-TW",
}

// ParseCulture matches a culture code case-insensitively against the codes
// WixUI supports and returns the canonical spelling.
func ParseCulture(text string) (Culture, error) {
	if culture, ok := cultures[strings.ToLower(text)]; ok {
		return culture, nil
	}

	return "", eris.Errorf("the '%s' culture is not supported by the WixUI extension; expected one of: %s",
		text, strings.Join(CultureCodes(), ", "))
}

// CultureCodes returns the canonical culture codes in sorted order.
func CultureCodes() []string {
	codes := make([]string, 0, len(cultures))
	for _, culture := range cultures {
		codes = append(codes, string(culture))
	}
	sort.Strings(codes)
	return codes
}

func (c Culture) String() string {
	return string(c)
}

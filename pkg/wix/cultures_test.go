package wix

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCulture(t *testing.T) {
	culture, err := ParseCulture("en-US")
	require.NoError(t, err)
	assert.Equal(t, DefaultCulture, culture)

	culture, err = ParseCulture("FR-fr")
	require.NoError(t, err)
	assert.Equal(t, Culture("fr-FR"), culture)

	culture, err = ParseCulture("sr-latn-cs")
	require.NoError(t, err)
	assert.Equal(t, Culture("sr-Latn-CS"), culture)
}

func TestParseCultureUnknown(t *testing.T) {
	_, err := ParseCulture("xx-XX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'xx-XX' culture is not supported")
	assert.Contains(t, err.Error(), "en-US")
}

func TestCultureCodes(t *testing.T) {
	codes := CultureCodes()
	assert.True(t, sort.StringsAreSorted(codes))
	assert.Contains(t, codes, "en-US")
	assert.Contains(t, codes, "zh-TW")
	assert.Len(t, codes, 39)
}

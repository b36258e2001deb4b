package wix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rotisserie/eris"
)

// candle only accepts versions with up to four dotted segments where each
// segment is a positive integer below 65536. Pre-release and metadata
// suffixes make it reject the version outright, so the pre-release data is
// funneled into the fourth segment instead: the first identifier lands in
// the high byte, the second in the low byte. Numbers may range from 0 to
// 229; letters map onto 230 through 255 so that any pre-release sorts below
// the release build number.
const (
	letterBase     = 255 - 26 + 1
	maxNumberValue = letterBase - 1

	// buildReleaseValue is the fourth segment for release versions. It is
	// the maximum candle accepts, which keeps releases newer than any
	// pre-release of the same version.
	buildReleaseValue = 65535
)

func buildByteFromLetters(identifier string) (uint16, error) {
	if identifier == "" {
		return 0, eris.New("an error occurred trying to convert the pre-release data to a build number: the data is missing")
	}

	c := identifier[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return uint16(c-'A') + letterBase, nil
	case c >= 'a' && c <= 'z':
		return uint16(c-'a') + letterBase, nil
	default:
		return 0, eris.Errorf(
			"an error occurred trying to convert the pre-release data to a build number: the first letter of the value (%s) must be an alphabetic letter (a-z or A-Z)",
			identifier)
	}
}

func buildByteFromIdentifier(identifier string) (uint16, error) {
	if n, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		if n > maxNumberValue {
			return 0, eris.Errorf(
				"an error occurred trying to convert the pre-release data to a build number: the actual value (%d) exceeds the maximum allowed value (%d)",
				n, maxNumberValue)
		}
		return uint16(n), nil
	}

	return buildByteFromLetters(identifier)
}

func buildValueFromPre(pre string) (uint16, error) {
	if pre == "" {
		return buildReleaseValue, nil
	}

	identifiers := strings.Split(pre, ".")
	var value uint16

	high, err := buildByteFromIdentifier(identifiers[0])
	if err != nil {
		return 0, err
	}
	value |= high << 8

	if len(identifiers) >= 2 {
		low, err := buildByteFromIdentifier(identifiers[1])
		if err != nil {
			return 0, err
		}
		value |= low
	}

	return value, nil
}

// CompilerVersion funnels a semantic version into the four-segment
// ProductVersion passed to candle. The upper limit for the first three
// segments is left to candle so a future WiX release lifting it is usable
// without a gowix change.
func CompilerVersion(version *semver.Version) (string, error) {
	build, err := buildValueFromPre(version.Prerelease())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d.%d.%d.%d",
		version.Major(), version.Minor(), version.Patch(), build), nil
}

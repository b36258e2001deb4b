package wix

import "runtime"

// Platform selects the installer architecture.
type Platform int

const (
	// X86 is the 32-bit platform.
	X86 Platform = iota
	// X64 is the 64-bit platform.
	X64
)

// DefaultPlatform matches the architecture gowix itself was built for,
// which is also what `go build` produces without a GOARCH override.
func DefaultPlatform() Platform {
	if runtime.GOARCH == "386" {
		return X86
	}
	return X64
}

// Name is the value for candle's Platform preprocessor variable.
func (p Platform) Name() string {
	if p == X86 {
		return "x86"
	}
	return "x64"
}

// Arch is the architecture tag used in the installer's file name.
func (p Platform) Arch() string {
	if p == X86 {
		return "i686"
	}
	return "x86_64"
}

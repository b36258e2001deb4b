package wix

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// Tool is one of the external programs gowix drives.
type Tool string

const (
	// Compiler is the WiX Toolset compiler, candle.exe.
	Compiler = Tool(compilerName)
	// Linker is the WiX Toolset linker, light.exe.
	Linker = Tool(linkerName)
	// Signer is signtool.exe from the Windows SDK.
	Signer = Tool(signerName)
)

// Locate resolves the path used to invoke the tool.
//
// An explicit bin path wins and must contain the tool. The WiX Toolset
// programs additionally honor the WIX system environment variable created by
// the toolset's installer, which points at the installation root with the
// programs in its bin folder. Without either, the bare name is returned and
// resolution is left to the PATH environment variable.
func (t Tool) Locate(ctx context.Context, binPath string) (string, error) {
	if binPath != "" {
		path := filepath.Join(binPath, string(t)+exeExtension)
		log(ctx).Trace().
			Str("path", binPath).
			Msgf("using the explicit path to the '%s' application", t)
		if _, err := os.Stat(path); err != nil {
			return "", eris.Errorf(
				"the '%s' application does not exist at the '%s' path specified via the '-b,--bin-path' command line argument; please check the path is correct and the application exists at the path",
				t, binPath)
		}
		return path, nil
	}

	if t != Signer {
		if root, ok := os.LookupEnv(WixPathVar); ok {
			path := filepath.Join(root, BinaryFolderName, string(t)+exeExtension)
			log(ctx).Trace().
				Str("path", root).
				Msgf("using the %s environment variable to locate the '%s' application", WixPathVar, t)
			if _, err := os.Stat(path); err != nil {
				return "", eris.Errorf(
					"the '%s' application does not exist at the '%s' path specified via the %s environment variable; please check the WiX Toolset (http://wixtoolset.org/) is installed and the variable points at its installation root",
					t, path, WixPathVar)
			}
			return path, nil
		}
	}

	return string(t), nil
}

// notFoundHint converts a "program not found" launch failure into a message
// with remediation steps, mirroring what the tool would print on a machine
// without the WiX Toolset.
func (t Tool) notFoundHint(err error) error {
	if !eris.Is(err, exec.ErrNotFound) && !eris.Is(err, os.ErrNotExist) {
		return err
	}

	if t == Signer {
		return eris.Errorf(
			"the signer application (%s) could not be found in the PATH environment variable; please check the Windows SDK (https://developer.microsoft.com/en-us/windows/downloads/windows-sdk/) is installed and you are using the x64 Native Tools Command Prompt, or use the '-b,--bin-path' command line argument",
			t)
	}

	return eris.Errorf(
		"the '%s' application could not be found in the PATH environment variable; please check the WiX Toolset (http://wixtoolset.org/) is installed and its '%s' folder has been added to the PATH environment variable, the %s system environment variable exists, or use the '-b,--bin-path' command line argument",
		t, BinaryFolderName, WixPathVar)
}

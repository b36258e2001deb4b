package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Coding-Badly/gowix/pkg/wix"
)

var createOpts = wix.CreateOptions{CaptureOutput: true}
var createNoCapture bool

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Builds the binaries and creates the installer (msi)",
	Long: `Builds the project's binaries with 'go build', compiles every WiX Source
(wxs) file in the project's wix folder with candle.exe, and links the
result into a Windows installer with light.exe. The installer is written
to 'target/wix' unless the output is overridden.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

// runCreate backs both the create subcommand and a bare `gowix`.
func runCreate(cmd *cobra.Command, args []string) error {
	createOpts.CaptureOutput = !createNoCapture
	return wix.Create(cmd.Context(), createOpts)
}

// addCreateFlags registers the create flags; they appear on the create
// subcommand and on the root command, which runs create by default.
func addCreateFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&createOpts.BinPath, "bin-path", "b", "", "path to the WiX Toolset's bin folder (candle.exe and light.exe)")
	flags.StringArrayVarP(&createOpts.CompilerArgs, "compiler-arg", "C", nil, "argument passed through to the WiX compiler (candle.exe)")
	flags.StringVarP(&createOpts.Culture, "culture", "c", "", "culture for the localized WixUI strings")
	flags.BoolVar(&createOpts.DebugBuild, "dbg-build", false, "build the binaries with the debug profile")
	flags.BoolVar(&createOpts.DebugName, "dbg-name", false, "append '-debug' to the installer's file stem")
	flags.StringArrayVarP(&createOpts.Includes, "include", "I", nil, "additional WiX Source (wxs) file")
	flags.StringVarP(&createOpts.Input, "input", "i", "", "path to the project manifest (gowix.toml)")
	flags.StringVar(&createOpts.Version, "install-version", "", "override the version from the manifest")
	flags.StringArrayVarP(&createOpts.LinkerArgs, "linker-arg", "L", nil, "argument passed through to the WiX linker (light.exe)")
	flags.StringVarP(&createOpts.Locale, "locale", "l", "", "path to a WiX localization (wxl) file")
	flags.StringVarP(&createOpts.Name, "name", "n", "", "override the installer's base name")
	flags.BoolVar(&createOpts.NoBuild, "no-build", false, "skip building the binaries")
	flags.BoolVar(&createNoCapture, "nocapture", false, "pass the go, candle, and light output through")
	flags.StringVarP(&createOpts.Output, "output", "o", "", "destination for the installer; a trailing slash keeps the default file name")
}

func init() {
	addCreateFlags(createCmd.Flags())
	addCreateFlags(rootCmd.Flags())

	rootCmd.AddCommand(createCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Coding-Badly/gowix/pkg/wix"
)

var signOpts = wix.SignOptions{CaptureOutput: true}
var signNoCapture bool

var signCmd = &cobra.Command{
	Use:   "sign [MSI]",
	Short: "Signs an installer with signtool.exe",
	Long: `Adds a digital signature to an installer using signtool.exe from the
Windows SDK with an automatically selected certificate. Without an MSI
argument the newest installer under 'target/wix' is signed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			signOpts.Msi = args[0]
		}
		signOpts.CaptureOutput = !signNoCapture
		return wix.Sign(cmd.Context(), signOpts)
	},
}

func init() {
	flags := signCmd.Flags()
	flags.StringVarP(&signOpts.BinPath, "bin-path", "b", "", "path to the folder containing signtool.exe")
	flags.StringVarP(&signOpts.Description, "description", "d", "", "override the content description added to the signature")
	flags.StringVarP(&signOpts.HomepageURL, "homepage-url", "u", "", "URL embedded in the signature (manifest homepage by default)")
	flags.StringVarP(&signOpts.Input, "input", "i", "", "path to the project manifest (gowix.toml)")
	flags.BoolVar(&signNoCapture, "nocapture", false, "pass the signtool output through")
	flags.StringVarP(&signOpts.Timestamp, "timestamp", "t", "", "timestamp server URL, or the 'verisign' or 'comodo' alias")

	rootCmd.AddCommand(signCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Coding-Badly/gowix/pkg/wix"
)

var printWxsOpts wix.WxsOptions
var printLicenseOpts wix.LicenseOptions

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Renders an embedded template",
}

var printWxsCmd = &cobra.Command{
	Use:   "wxs",
	Short: "Renders the WiX Source (wxs) skeleton for the project",
	Long: `Renders the WiX Source skeleton to stdout (or the '--output' path) using
the project's manifest for all defaults. Useful for redirecting into a
custom location: gowix print wxs > wix/main.wxs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wix.PrintWxs(cmd.Context(), printWxsOpts)
	},
}

var printLicenseCmd = &cobra.Command{
	Use:   "license ID",
	Short: "Renders an embedded RTF license template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printLicenseOpts.ID = args[0]
		return wix.PrintLicense(cmd.Context(), printLicenseOpts)
	},
}

// addWxsFlags registers the flags shared by 'init' and 'print wxs'.
func addWxsFlags(flags *pflag.FlagSet, opts *wix.WxsOptions) {
	flags.StringVar(&opts.Banner, "banner", "", "path to a 493x58 bitmap shown across the top of each dialog")
	flags.StringArrayVarP(&opts.Binaries, "binary", "B", nil, "path to a binary to install, overriding the [[bin]] sections")
	flags.StringVarP(&opts.Description, "description", "d", "", "override the package description")
	flags.StringVar(&opts.Dialog, "dialog", "", "path to a 493x312 bitmap shown on the first dialog")
	flags.StringVarP(&opts.Eula, "eula", "e", "", "path to an RTF file used in the license agreement dialog")
	flags.StringVarP(&opts.HelpURL, "url", "u", "", "override the help URL stored in Add/Remove Programs")
	flags.StringVarP(&opts.Input, "input", "i", "", "path to the project manifest (gowix.toml)")
	flags.StringVarP(&opts.License, "license", "l", "", "path to the license sidecar file installed with the binaries")
	flags.StringVarP(&opts.Manufacturer, "manufacturer", "m", "", "override the manufacturer (first author by default)")
	flags.StringVarP(&opts.Output, "output", "o", "", "render destination (stdout by default)")
	flags.StringVar(&opts.ProductIcon, "product-icon", "", "path to the icon shown in Add/Remove Programs")
	flags.StringVar(&opts.ProductName, "product-name", "", "override the name shown in Add/Remove Programs")
}

func init() {
	addWxsFlags(printWxsCmd.Flags(), &printWxsOpts)

	flags := printLicenseCmd.Flags()
	flags.StringVar(&printLicenseOpts.Holder, "holder", "", "override the copyright holder (first author by default)")
	flags.StringVarP(&printLicenseOpts.Input, "input", "i", "", "path to the project manifest (gowix.toml)")
	flags.StringVarP(&printLicenseOpts.Output, "output", "o", "", "render destination (stdout by default)")
	flags.StringVar(&printLicenseOpts.Year, "year", "", "override the copyright year (the current year by default)")

	printCmd.AddCommand(printWxsCmd)
	printCmd.AddCommand(printLicenseCmd)
	rootCmd.AddCommand(printCmd)
}

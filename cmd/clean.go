package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Coding-Badly/gowix/pkg/wix"
)

var cleanOpts wix.CleanOptions
var purgeOpts wix.CleanOptions

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Removes the installer build output (target/wix)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wix.Clean(cmd.Context(), cleanOpts)
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Removes the installer build output and the wix source folder",
	Long: `Removes everything 'gowix init' and 'gowix create' produced: the
'target/wix' build output and the project's 'wix' folder, including any
WiX Source and license files in it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wix.Purge(cmd.Context(), purgeOpts)
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanOpts.Input, "input", "i", "", "path to the project manifest (gowix.toml)")
	purgeCmd.Flags().StringVarP(&purgeOpts.Input, "input", "i", "", "path to the project manifest (gowix.toml)")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(purgeCmd)
}

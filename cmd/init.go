package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Coding-Badly/gowix/pkg/wix"
)

var initOpts wix.InitOptions

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generates the wix folder for a project",
	Long: `Renders the WiX Source (wxs) skeleton into 'wix/main.wxs' so the project
can be packaged with 'gowix create'. A license sidecar (License.rtf) is
generated next to it when the manifest's license id has an embedded
template. Existing files are kept unless '--force' is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wix.Init(cmd.Context(), initOpts)
	},
}

func init() {
	flags := initCmd.Flags()
	addWxsFlags(flags, &initOpts.WxsOptions)
	flags.BoolVar(&initOpts.Force, "force", false, "overwrite existing files")

	rootCmd.AddCommand(initCmd)
}

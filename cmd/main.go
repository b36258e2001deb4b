package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Coding-Badly/gowix/pkg/wix"
)

var rootCmd = &cobra.Command{
	Use:   "gowix",
	Short: "Creates Windows installers with the WiX Toolset",
	Long: `gowix packages an application into a Windows installer (msi) using the
WiX Toolset. It renders a WiX Source (wxs) file from the project's
gowix.toml manifest, builds the binaries, and drives the WiX compiler
(candle.exe) and linker (light.exe).

Without a subcommand, gowix runs create.`,
	SilenceUsage: true,
	RunE:         runCreate,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		logger := zerolog.New(NewConsoleWriter())
		switch verbosity {
		case 0:
			logger = logger.Level(zerolog.InfoLevel)
		case 1:
			logger = logger.Level(zerolog.DebugLevel)
		default:
			logger = logger.Level(zerolog.TraceLevel)
		}

		cmd.SetContext(wix.WithLogger(cmd.Context(), &logger))
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase the log verbosity; repeat for trace output")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

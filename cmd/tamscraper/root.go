package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var rootFlag string
	var logLevelFlag string
	var noPause bool

	rootCmd := &cobra.Command{
		Use:   "tamscraper",
		Short: "Convert LaunchBox metadata exports into gamelist.xml files",
		Long: `tamscraper scans a directory of game folders, pairs ROM files with the
LaunchBox metadata XML found in each folder, normalizes cover, fanart, and
marquee artwork, and writes a simplified gamelist.xml per folder.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, scanOptions{
				ConfigPath: configFlag,
				Root:       rootFlag,
				LogLevel:   logLevelFlag,
				NoPause:    noPause,
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Scan root (default: directory containing the executable)")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")
	rootCmd.Flags().BoolVar(&noPause, "no-pause", false, "Skip the interactive pause before exit")

	rootCmd.AddCommand(newConfigCommand(&configFlag, &rootFlag))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

package main

import "github.com/spf13/cobra"

var (
	rootCmd = &cobra.Command{
		Use:           "gbridge",
		Short:         "gbridge greybus device bridge.",
		Long:          ``,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dcf",
	Short: "dcf reads data dictionary definitions.",
	Long:  "dcf reads data dictionary definitions (sectioned Key=Value text) and prints their structure, column labels and value labels.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dcf",
	Long:  `All software has versions. This is dcf's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "dcf v0.2 -- HEAD")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globals.ConfigPath, "config", "", "config file (default .dcf.toml if present)")
	rootCmd.PersistentFlags().BoolVarP(&globals.Verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.Format, "format", "", "output format: json or yaml")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(labelsCmd)
	rootCmd.AddCommand(valuesCmd)
}

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

type rootOptions struct {
	configFile string
	logLevel   string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "docxgen",
		Short: "Build DOCX documents from YAML manifests",
		Long: `docxgen assembles a DOCX package from a YAML manifest listing text,
formatted runs, aligned paragraphs, list items, tables and images.

Images above the compression threshold are shrunk to their display size and
re-encoded as JPEG before they are embedded.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error, off)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newBuildCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("docxgen version %s\n", version)
		},
	}
}

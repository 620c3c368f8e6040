package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-docxgen/pkg/docxgen"
	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/manifest"
)

func newBuildCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build <manifest.yaml>",
		Short: "Build a DOCX package from a manifest",
		Example: `  docxgen build report.yaml -o report.docx
  docxgen build report.yaml --config docxgen.yaml --log-level debug`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBuild(cmd, root, args[0], output)
			if err != nil {
				printError(cmd.ErrOrStderr(), "%v", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (defaults to the manifest's output)")
	return cmd
}

func runBuild(cmd *cobra.Command, root *rootOptions, manifestPath, output string) error {
	config, err := loadConfig(root)
	if err != nil {
		return err
	}

	level := config.LogLevel
	if root.logLevel != "" {
		level = root.logLevel
	}
	docxgen.InitLogging(level, config.LogTag)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	dest := output
	if dest == "" {
		dest = m.OutputPath()
	}
	if dest == "" {
		return errors.New("no output file: pass -o or set output in the manifest")
	}

	printInfo(cmd.OutOrStdout(), "Building %d blocks from %s", len(m.Blocks), manifestPath)

	b := docxgen.New(docxgen.WithConfig(config))
	if err := manifest.Apply(b, m); err != nil {
		return err
	}
	if err := b.Finalize(dest); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Wrote %s", dest)
	return nil
}

func loadConfig(root *rootOptions) (*docxgen.Config, error) {
	if root.configFile != "" {
		return docxgen.LoadConfigFile(root.configFile)
	}
	config := docxgen.ConfigFromEnvironment()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

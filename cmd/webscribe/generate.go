package main

import (
	"github.com/spf13/cobra"

	"github.com/t3mko/webscribe/internal/config"
	"github.com/t3mko/webscribe/internal/log"
	"github.com/t3mko/webscribe/internal/script"
	"github.com/t3mko/webscribe/internal/session"
)

func newGenerateCommand() *cobra.Command {
	var input string
	var framework string
	var output string
	var name string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a test script from a saved recording",
		Long: `Generate renders a previously saved recording (webscribe run --session)
into a runnable test script for the chosen framework.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(input, framework, output, name)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Recording file to render (required)")
	cmd.MarkFlagRequired("input")
	cmd.Flags().StringVarP(&framework, "framework", "f", config.GetDefaultFramework(), "Target framework (selenium|playwright)")
	cmd.Flags().StringVarP(&output, "output", "o", config.GetOutputDir(), "Output directory")
	cmd.Flags().StringVar(&name, "name", "", "Output filename (default test_script_<timestamp>_<framework>.py)")

	cmd.RegisterFlagCompletionFunc("framework", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"selenium", "playwright"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runGenerate(input, framework, output, name string) error {
	logger := log.New()

	fw, err := script.ParseFramework(framework)
	if err != nil {
		return err
	}

	sess, err := session.Load(input)
	if err != nil {
		return err
	}

	gen := script.NewGenerator()
	text := gen.RenderFramework(sess.Actions(), fw)

	if name == "" {
		name = script.DefaultFilename(fw)
	}

	path, err := session.WriteScript(output, name, text)
	if err != nil {
		return err
	}

	logger.Success("Saved %s script to %s (%d actions)", fw, path, sess.Len())
	return nil
}

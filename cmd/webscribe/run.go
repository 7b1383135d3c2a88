package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t3mko/webscribe/internal/ai"
	"github.com/t3mko/webscribe/internal/browser"
	"github.com/t3mko/webscribe/internal/config"
	"github.com/t3mko/webscribe/internal/log"
	"github.com/t3mko/webscribe/internal/script"
	"github.com/t3mko/webscribe/internal/session"
)

type runOptions struct {
	framework   string
	provider    string
	model       string
	output      string
	sessionPath string
	headless    bool
}

func newRunCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <url> <step>...",
		Short: "Execute natural language steps in a browser and generate scripts",
		Long: `Run opens the given URL, executes each natural language step with
AI-assisted element selection, records every performed action, and
generates a test script from the recording.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(args[0], args[1:], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.framework, "framework", "f", config.GetDefaultFramework(), "Target framework (selenium|playwright|all)")
	cmd.Flags().StringVar(&opts.provider, "provider", config.GetProviderName(), "AI provider: claude, openai")
	cmd.Flags().StringVar(&opts.model, "model", config.GetProviderModel(), "Specific model override")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.GetOutputDir(), "Output directory")
	cmd.Flags().StringVar(&opts.sessionPath, "session", "", "Also save the recording to this file")
	cmd.Flags().BoolVar(&opts.headless, "headless", config.GetBrowserHeadless(), "Run the browser headless")

	return cmd
}

func runSteps(url string, steps []string, opts runOptions) error {
	logger := log.New()

	frameworks, err := resolveFrameworks(opts.framework)
	if err != nil {
		return err
	}

	provider, err := ai.NewProvider(opts.provider, opts.model)
	if err != nil {
		return fmt.Errorf("AI provider init failed: %w", err)
	}

	logger.Step("Launching browser")
	width, height := config.GetBrowserViewport()
	b, err := browser.Launch(browser.Options{
		Width:    width,
		Height:   height,
		Headless: opts.headless,
		Timeout:  config.GetBrowserTimeout(),
	}, logger)
	if err != nil {
		logger.Failed()
		return err
	}
	defer b.Close()
	logger.Done("")

	sess := session.New()
	sess.StartURL = url

	logger.Step("Navigating to %s", url)
	if err := b.Navigate(url); err != nil {
		logger.Failed()
		return err
	}
	sess.Record(script.ActionNavigate, script.ElementInfo{URL: url})
	logger.Done("")

	for i, step := range steps {
		logger.Step("[%d/%d] %s", i+1, len(steps), step)
		if err := executeStep(b, provider, sess, step, logger); err != nil {
			logger.Failed()
			return fmt.Errorf("step %q failed: %w", step, err)
		}
		logger.Done("")
	}

	if opts.sessionPath != "" {
		if err := sess.Save(opts.sessionPath); err != nil {
			return err
		}
		logger.Info("Recording saved to %s", opts.sessionPath)
	}

	gen := script.NewGenerator()
	for _, fw := range frameworks {
		text := gen.RenderFramework(sess.Actions(), fw)
		path, err := session.WriteScript(opts.output, script.DefaultFilename(fw), text)
		if err != nil {
			return err
		}
		logger.Success("Saved %s script to %s", fw, path)
	}

	return nil
}

// executeStep analyzes one step against the current page and performs the
// resulting action, recording it on success. When analysis fails the
// keyword fallback decides the action.
func executeStep(b *browser.Browser, provider ai.Provider, sess *session.Session, step string, logger *log.Logger) error {
	var plan *ai.StepPlan

	pageMap, err := b.Scan()
	if err != nil {
		logger.Debug("page scan failed (%v), using fallback analysis", err)
		plan = ai.FallbackPlan(step)
	} else {
		plan, err = provider.AnalyzeStep(pageMap, step)
		if err != nil {
			logger.Debug("step analysis failed (%v), using fallback analysis", err)
			plan = ai.FallbackPlan(step)
		}
	}

	switch script.ActionType(plan.ActionType) {
	case script.ActionNavigate:
		if err := b.Navigate(plan.URL); err != nil {
			return err
		}
		sess.Record(script.ActionNavigate, script.ElementInfo{URL: plan.URL})

	case script.ActionInput:
		detail, err := b.Type(plan.Locators(), plan.InputValue, true)
		if err != nil {
			return err
		}
		sess.Record(script.ActionInput, script.ElementInfo{
			Value:    plan.InputValue,
			Locators: plan.Locators(),
			Tag:      detail.Tag,
			Text:     detail.Text,
		})

	case script.ActionClick:
		detail, err := b.Click(plan.Locators())
		if err != nil {
			return err
		}
		sess.Record(script.ActionClick, script.ElementInfo{
			Locators: plan.Locators(),
			Tag:      detail.Tag,
			Text:     detail.Text,
		})

	default:
		logger.Warn("skipping step with unknown action type %q", plan.ActionType)
	}

	return nil
}

func resolveFrameworks(token string) ([]script.Framework, error) {
	if token == "all" {
		return []script.Framework{script.FrameworkSelenium, script.FrameworkPlaywright}, nil
	}
	fw, err := script.ParseFramework(token)
	if err != nil {
		return nil, err
	}
	return []script.Framework{fw}, nil
}

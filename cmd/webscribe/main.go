package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env file if present (silently ignore if not found)
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "webscribe",
		Short: "Record browser sessions and transcribe them into UI-test scripts",
		Long: `webscribe drives a browser through natural language test steps, records
every interaction, and generates a runnable Selenium or Playwright test
script from the recording.

Example:
  webscribe run "https://shop.example.com" \
    "Enter 'laptop' in the search field" \
    "Click on the first result"
  webscribe generate --input session.json --framework playwright`,
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newGenerateCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

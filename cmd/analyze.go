// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lechnerc77/github-pr-analytics/internal/config"
	"github.com/lechnerc77/github-pr-analytics/internal/gateway"
	"github.com/lechnerc77/github-pr-analytics/internal/renderer"
	"github.com/lechnerc77/github-pr-analytics/internal/usecase"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyzes merged pull requests and reports merge statistics",
	Long: `Analyzes the merged pull requests of every configured repository over the
selected time interval and reports time-to-merge and lines-changed statistics
in the selected output format.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		// Progress logging is discarded unless --verbose is given; notices
		// (fallbacks, skipped repositories) always go to standard error.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags)
		if verbose {
			logger.SetOutput(os.Stderr)
		}
		notice := log.New(os.Stderr, "", log.LstdFlags)

		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			fmt.Fprintln(os.Stderr, "Error: GITHUB_TOKEN environment variable is not set.")
			os.Exit(1)
		}

		intervalStr, _ := cmd.Flags().GetString("interval")
		formatStr, _ := cmd.Flags().GetString("format")
		interactive, _ := cmd.Flags().GetBool("interactive")
		configPath, _ := cmd.Flags().GetString("config")

		if interactive {
			reader := bufio.NewReader(os.Stdin)
			intervalStr = prompt(reader, "Time interval (last_week/last_month) [last_week]: ")
			formatStr = prompt(reader, "Output format (console/json/csv) [console]: ")
		}

		cfg, err := config.Load(configPath, notice)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		interval := usecase.ParseInterval(intervalStr, notice)
		format := renderer.ParseFormat(formatStr, notice)
		window := interval.Window(time.Now())

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		analyzer := usecase.NewAnalyzer(githubGateway, notice)

		reports := analyzer.AnalyzeAll(ctx, cfg.Repositories, window)

		r := renderer.NewRenderer(os.Stdout, cfg.Output.JSONFile, cfg.Output.CSVFile, notice)
		if err := r.Render(reports, format); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render results: %v\n", err)
			os.Exit(1)
		}
	},
}

// prompt reads one line of user input from the reader, returning an empty
// string on EOF so the caller's defaults apply.
func prompt(reader *bufio.Reader, message string) string {
	fmt.Fprint(os.Stderr, message)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().String("interval", "", "Time interval to analyze: last_week or last_month")
	analyzeCmd.Flags().String("format", "", "Output format: console, json or csv")
	analyzeCmd.Flags().Bool("interactive", false, "Prompt for interval and format instead of reading flags")
	analyzeCmd.Flags().String("config", "", "Path to the config file (default: ./pr-analytics.yaml)")
}

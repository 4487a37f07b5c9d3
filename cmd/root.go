package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/yaared/dealspot/internal/app"
	"github.com/yaared/dealspot/internal/config"
	"github.com/yaared/dealspot/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	baseURLOverride       string
	notificationsEnabled  bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "dealspot",
	Short: "TUI for asking questions about deals in a remote catalog",
	Long: `Dealspot is a terminal client for a deal question-answering service.
Pick a deal from the remote catalog, ask free-text questions about it,
and read the generated answer alongside its supporting source excerpts.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&baseURLOverride, "base-url", "", "Override the deal service base URL")
	rootCmd.Flags().BoolVar(&notificationsEnabled, "notifications", false, "Desktop notification when an answer arrives (persisted)")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("dealspot %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("dealspot %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if baseURLOverride != "" {
		cfg.SetBaseURL(baseURLOverride)
	}
	if cmd.Flags().Changed("notifications") {
		cfg.SetNotificationsEnabled(notificationsEnabled)
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to persist notifications setting: %v", err)
		}
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m := app.New(cfg, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

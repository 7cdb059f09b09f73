// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"mediacheck/internal/checker"
	"mediacheck/internal/config"
	"mediacheck/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version = "1.0.0"

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile   string
	logLevel  string
	baseURL   string
	listFile  string
	errorLog  string
	timeout   string
	userAgent string
)

// RootCmd represents the base command when called without any subcommands.
// It runs the check over the resource list.
var RootCmd = &cobra.Command{
	Use:   "mediacheck",
	Short: "MediaHub resource availability checker",
	Long: `Verifies that a list of expected resources is reachable on a target file
server. Each entry of the list file is probed with one HTTP HEAD request, in
order; failures are appended to the error log and a final tally is printed.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the check run.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: MEDIACHECK_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: MEDIACHECK_LOG_LEVEL)")

	// Check-specific flags
	RootCmd.Flags().StringVar(&baseURL, "base-url", "", "Base address of the server under test. (Env: MEDIACHECK_BASE_URL)")
	RootCmd.Flags().StringVar(&listFile, "list-file", "", "File with one resource path per line. (Env: MEDIACHECK_LIST_FILE)")
	RootCmd.Flags().StringVar(&errorLog, "error-log", "", "File failures are appended to. (Env: MEDIACHECK_ERROR_LOG)")
	RootCmd.Flags().StringVar(&timeout, "timeout", "", "Per-request HTTP timeout (e.g. '30s', '2m'; '0' disables). (Env: MEDIACHECK_TIMEOUT)")
	RootCmd.Flags().StringVar(&userAgent, "user-agent", "", "User-Agent header sent with each request. (Env: MEDIACHECK_USER_AGENT)")
}

// resolveConfigPath lets MEDIACHECK_CONFIG_PATH point at the config file
// unless the flag was set explicitly.
func resolveConfigPath() {
	if envPath := os.Getenv("MEDIACHECK_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	resolveConfigPath()

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	// Helper to get string from env or fallback
	getEnv := func(key string) string {
		return os.Getenv(key)
	}

	// --- 1. Environment Variables ---
	if v := getEnv("MEDIACHECK_BASE_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := getEnv("MEDIACHECK_LIST_FILE"); v != "" {
		c.Checker.ListFile = v
	}
	if v := getEnv("MEDIACHECK_ERROR_LOG"); v != "" {
		c.Checker.ErrorLog = v
	}
	if v := getEnv("MEDIACHECK_TIMEOUT"); v != "" {
		c.Checker.Timeout = v
	}
	if v := getEnv("MEDIACHECK_USER_AGENT"); v != "" {
		c.Checker.UserAgent = v
	}
	if v := getEnv("MEDIACHECK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if baseURL != "" {
		c.Server.BaseURL = baseURL
	}
	if listFile != "" {
		c.Checker.ListFile = listFile
	}
	if errorLog != "" {
		c.Checker.ErrorLog = errorLog
	}
	if timeout != "" {
		c.Checker.Timeout = timeout
	}
	if userAgent != "" {
		c.Checker.UserAgent = userAgent
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}

	// --- 3. Defaults ---
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = config.DefaultBaseURL
	}
	if c.Checker.ListFile == "" {
		c.Checker.ListFile = config.DefaultListFile
	}
	if c.Checker.ErrorLog == "" {
		c.Checker.ErrorLog = config.DefaultErrorLog
	}
	if c.Logging.Level == "" {
		c.Logging.Level = config.DefaultLogLevel
	}
}

// runCheck performs the check run. Check failures are reported in the tally
// and the error log but never surface as a command error; only an unreadable
// list file does.
func runCheck(cmd *cobra.Command) error {
	if cfg.Checker.UserAgent == "" {
		cfg.Checker.UserAgent = "mediacheck/" + Version
	}

	logging.Log.Debugf("Checking against %s (list: %s, timeout: %s)",
		cfg.Server.BaseURL, cfg.Checker.ListFile, cfg.Checker.Timeout)

	c := checker.New(cfg)
	c.Out = cmd.OutOrStdout()

	_, err := c.Run()
	return err
}

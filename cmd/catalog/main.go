package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/catalog-tui/internal/cli"
	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/Veraticus/catalog-tui/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// annotationInteractive marks commands that take over the terminal. Their
// logs go to a file so they never draw over the screen.
const annotationInteractive = "interactive"

var (
	cfgFile   string
	version   = "dev"
	logCloser io.Closer
	rootCmd   = &cobra.Command{
		Use:   "catalog",
		Short: "Manage catalog categories and products",
		Long: `catalog: a terminal client for a product catalog API.

Run without a subcommand to open the interactive screen, or use the
subcommands below for scripting.`,
		Annotations:       map[string]string{annotationInteractive: "true"},
		PersistentPreRunE: initConfig,
		RunE:              runTUI,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	config.SetDefaults(viper.GetViper())

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/catalog/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", config.DefaultBaseURL, "catalog API base URL")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))

	// Add commands
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(productsCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx, cancel := context.WithCancel(context.Background())
	ctx = interrupts.HandleInterrupts(ctx)

	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if logCloser != nil {
		_ = logCloser.Close()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err, err.Error())))
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/catalog", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. CATALOG_API_BASE_URL
	viper.SetEnvPrefix("CATALOG")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Set up logging
	if err := setupLogging(isInteractive(cmd)); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationInteractive] == "true"
}

// setupLogging installs the global logger. Interactive commands always log
// to a rotating file; the others log to stderr unless a file is configured.
func setupLogging(interactive bool) error {
	level := viper.GetString("logging.level")
	format := viper.GetString("logging.format")
	file := config.ExpandPath(viper.GetString("logging.file"))
	if file == "" && interactive {
		file = config.ExpandPath(config.DefaultLogFile)
	}

	var w io.Writer = os.Stderr
	if file != "" {
		rotating := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w = rotating
		logCloser = rotating
	}

	return common.SetupLogger(w, level, format)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "catalog version %s\n", version)
			return err
		},
	}
}

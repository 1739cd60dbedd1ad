package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"finboard/internal/common"
	"finboard/internal/model"
	"finboard/internal/service"
	"finboard/internal/session"
	"finboard/internal/state"
	"finboard/internal/storage"
	"finboard/internal/tui"
	"finboard/internal/tui/themes"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "finboard",
		Short: "Financial dashboard for small teams, in your terminal",
		Long: `finboard tracks a team's income, expenses, capital contributions, ad
performance, and tasks, all stored locally. No server, no account, no
network: the data never leaves your machine.`,
		PersistentPreRunE: initConfig,
		RunE:              runDashboard,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/finboard/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("db", "", "database file (default: $HOME/.local/share/finboard/finboard.db)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))

	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		viper.AddConfigPath(filepath.Join(home, ".config", "finboard"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FINBOARD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// No config file is fine, defaults apply
	}

	level := common.ParseLogLevel(viper.GetString("logging.level"))
	return common.SetupLogger(level, viper.GetString("logging.format"))
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "finboard", "finboard.db")
	}

	blobs, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if closeErr := blobs.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	st, err := state.Load(ctx, blobs)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if st.Seed(seedCategories(), seedPaymentMethods()) {
		if err := st.Persist(ctx, blobs,
			storage.KeyCategories, storage.KeyPaymentMethods, storage.KeyIDCounter); err != nil {
			return fmt.Errorf("failed to persist seed data: %w", err)
		}
		slog.Info("seeded default categories and payment methods")
	}

	sess, err := session.Restore(ctx, blobs)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	return tui.Run(ctx, tui.Config{
		State:    st,
		Services: service.New(st, blobs, sess),
		Session:  sess,
		Theme:    themes.Default,
	})
}

// seedCategories returns the first-run categories, honoring overrides from
// the config file's seed.categories list (name + type pairs).
func seedCategories() []state.SeedCategory {
	if !viper.IsSet("seed.categories") {
		return state.DefaultSeedCategories()
	}
	var out []state.SeedCategory
	raw := viper.Get("seed.categories")
	entries, ok := raw.([]any)
	if !ok {
		slog.Warn("ignoring malformed seed.categories config")
		return state.DefaultSeedCategories()
	}
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name, _ := entry["name"].(string)
		typ, _ := entry["type"].(string)
		if name == "" {
			continue
		}
		out = append(out, state.SeedCategory{Name: name, Type: model.TransactionType(typ)})
	}
	return out
}

func seedPaymentMethods() []string {
	if !viper.IsSet("seed.paymentMethods") {
		return state.DefaultSeedPaymentMethods()
	}
	return viper.GetStringSlice("seed.paymentMethods")
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("finboard %s\n", version)
		},
	}
}

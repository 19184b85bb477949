package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/cmd/cli/commands"
	"github.com/hannahbrooks/volunteer-connect/internal/config"
	"github.com/hannahbrooks/volunteer-connect/pkg/records"
	"github.com/hannahbrooks/volunteer-connect/pkg/session"
	"github.com/hannahbrooks/volunteer-connect/pkg/store"
	"github.com/hannahbrooks/volunteer-connect/pkg/store/filestore"
	"github.com/hannahbrooks/volunteer-connect/pkg/store/pgstore"
	"github.com/hannahbrooks/volunteer-connect/pkg/store/sqlitestore"
	"github.com/hannahbrooks/volunteer-connect/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
	kv  store.Store
)

func main() {
	// Optional; environment overrides work without a .env file
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Volunteer Connect CLI - Browse events and manage volunteer registrations",
		Long:  `A CLI tool for browsing volunteer events, keeping a personal save-list, and requesting volunteer positions.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if kv != nil {
				kv.Close()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.ListEventsCmd(appRef()))
	rootCmd.AddCommand(commands.SavedEventsCmd(appRef()))
	rootCmd.AddCommand(commands.SaveEventCmd(appRef()))
	rootCmd.AddCommand(commands.StatusCmd(appRef()))
	rootCmd.AddCommand(commands.RegisterCmd(appRef()))
	rootCmd.AddCommand(commands.WatchCmd(appRef()))
	rootCmd.AddCommand(commands.SeedCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, allocating it before initApp
// fills it in so commands can capture the pointer at registration time.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, store, and session
func initApp() error {
	var err error
	a := appRef()
	a.Ctx = context.Background()

	// Initialize logger
	a.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	a.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.Logger.Debug("Configuration loaded successfully",
		zap.String("store_backend", a.Cfg.StoreBackend))

	// Open the store
	kv, err = openStore(a.Ctx, a.Cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	a.DB = records.New(kv)
	a.Logger.Debug("Store opened successfully")

	// Session provider
	a.Session = session.NewFileProvider(a.Cfg.SessionFile)

	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case store.BackendFile:
		return filestore.New(cfg.StorePath)
	case store.BackendSQLite:
		return sqlitestore.New(ctx, cfg.StorePath)
	case store.BackendPostgres:
		return pgstore.New(ctx, cfg.StoreDSN)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}

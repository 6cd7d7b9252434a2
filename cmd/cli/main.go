package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/cmd/cli/commands"
	"github.com/pawsitive-rescue/volunteer-match/internal/config"
	"github.com/pawsitive-rescue/volunteer-match/pkg/clients/gmailclient"
	"github.com/pawsitive-rescue/volunteer-match/pkg/core/services"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store/file"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store/memory"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store/mongo"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store/postgres"
	"github.com/pawsitive-rescue/volunteer-match/pkg/utils"
	"github.com/pawsitive-rescue/volunteer-match/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "volunteer-match",
		Short: "Volunteer Match CLI - Match rescue volunteers to events",
		Long:  `A CLI tool for managing rescue events, volunteer profiles, matching, and assignments.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Store != nil {
					app.Store.Close(app.Ctx)
				}
				if app.Logger != nil {
					app.Logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.ServeCmd(getApp))
	rootCmd.AddCommand(commands.SeedCmd(getApp))
	rootCmd.AddCommand(commands.ListEventsCmd(getApp))
	rootCmd.AddCommand(commands.ListVolunteersCmd(getApp))
	rootCmd.AddCommand(commands.MatchCmd(getApp))
	rootCmd.AddCommand(commands.AssignCmd(getApp))
	rootCmd.AddCommand(commands.UnassignCmd(getApp))
	rootCmd.AddCommand(commands.HistoryCmd(getApp))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getApp() *commands.AppContext {
	return app
}

// initApp sets up logger, config, store, and the optional email notifier
func initApp() error {
	// Backend credentials may come from a .env next to the binary or in
	// a parent directory
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}

	if cfg.SeedOnInit {
		if err := st.SeedIfEmpty(ctx); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	}

	var notifier services.Notifier
	if cfg.Gmail != nil {
		notifier, err = buildNotifier(ctx, cfg, st, logger)
		if err != nil {
			return fmt.Errorf("failed to set up gmail notifier: %w", err)
		}
	}

	app = &commands.AppContext{
		Cfg:      cfg,
		Store:    st,
		Notifier: notifier,
		Logger:   logger,
		Ctx:      ctx,
	}
	return nil
}

// openStore constructs the configured entity store backend
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "memory":
		return memory.NewStore(), nil
	case "file":
		return file.Open(cfg.StoreFilePath)
	case "postgres":
		st, err := postgres.NewStore(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := st.RunMigrations(ctx); err != nil {
			st.Close(ctx)
			return nil, err
		}
		return st, nil
	case "mongo":
		return mongo.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// buildNotifier runs the OAuth token flow and wires the Gmail-backed
// assignment notifier
func buildNotifier(ctx context.Context, cfg *config.Config, st store.Store, logger *zap.Logger) (services.Notifier, error) {
	oauthCfg, err := config.LoadOAuthClient()
	if err != nil {
		return nil, err
	}

	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, err
	}

	token, err := utils.GetTokenWithFlow(ctx, oauthConfig, env)
	if err != nil {
		return nil, err
	}

	gmailClient, err := gmailclient.NewClient(ctx, oauthCfg, token, cfg.Gmail.Sender)
	if err != nil {
		return nil, err
	}

	return services.NewEmailNotifier(gmailClient, st, logger), nil
}

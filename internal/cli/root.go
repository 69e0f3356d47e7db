// Package cli defines the cobra command tree: the root command launches the
// interactive terminal UI, subcommands cover headless export, import, and
// data wipe for scripting.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msavelyeva/nutrikeep/internal/adapter"
	"github.com/msavelyeva/nutrikeep/internal/client"
	"github.com/msavelyeva/nutrikeep/internal/config"
	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/internal/service"
	"github.com/msavelyeva/nutrikeep/internal/store"
)

// RootOptions holds flags shared by all commands.
type RootOptions struct {
	DBPath     string
	ConfigPath string
	APIBaseURL string
}

// NewRootCommand creates the nutrikeep root command. Running it without a
// subcommand starts the interactive TUI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "nutrikeep",
		Short:         "Дневник питания в терминале",
		Long:          "Локальный дневник питания: дневные записи, кеш продуктов Open Food Facts, сохранённые блюда, история веса и профиль. Все данные хранятся в одном файле SQLite.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.DBPath, "db", "d", "", "путь к файлу базы SQLite")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "путь к JSON-файлу конфигурации")
	cmd.PersistentFlags().StringVarP(&opts.APIBaseURL, "api-url", "u", "", "базовый URL API базы продуктов")

	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewWipeCommand(opts))

	return cmd
}

func loadConfig(opts *RootOptions) (*config.StructuredConfig, error) {
	flags := &config.StructuredConfig{JSONFilePath: opts.ConfigPath}
	flags.Storage.DB.Path = opts.DBPath
	flags.Adapter.FoodAPIBaseURL = opts.APIBaseURL
	return config.GetConfig(flags)
}

func runTUI(ctx context.Context, opts *RootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	app, err := client.NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}

// withServices runs fn against a fully wired service layer without starting
// the TUI or the background refresher. Used by the headless subcommands.
func withServices(ctx context.Context, opts *RootOptions, fn func(context.Context, *service.Services) error) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New("cli")
	ctx = log.WithContext(ctx)

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("open local storage: %w", err)
	}
	defer storages.Close()

	provider, err := adapter.NewOpenFoodFactsAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create food data adapter: %w", err)
	}

	return fn(ctx, service.NewServices(storages, provider))
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msavelyeva/nutrikeep/internal/service"
	"github.com/msavelyeva/nutrikeep/internal/transfer"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Format   string
	Override bool
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <файл>",
		Short: "Импорт данных из JSON или CSV",
		Long: `Импорт ранее экспортированных данных. Без флага --override
существующие записи сохраняются, импортируются только новые.

Примеры:
  nutrikeep import backup.json
  nutrikeep import --override --format csv backup.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "формат файла (json|csv), по умолчанию по расширению")
	cmd.Flags().BoolVar(&opts.Override, "override", false, "перезаписывать существующие записи")

	return cmd
}

func runImport(ctx context.Context, opts *ImportOptions, path string) error {
	raw := opts.Format
	if raw == "" {
		raw = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	format, err := transfer.ParseFormat(raw)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return withServices(ctx, opts.RootOptions, func(ctx context.Context, svcs *service.Services) error {
		report, err := svcs.TransferService.Import(ctx, data, format, opts.Override)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "импортировано записей: %d\n", report.Imported)
		for _, failure := range report.Failed {
			fmt.Fprintf(os.Stderr, "не записано %s/%s: %v\n", failure.Section, failure.Key, failure.Err)
		}
		if len(report.Failed) > 0 {
			return fmt.Errorf("записей с ошибками: %d", len(report.Failed))
		}
		return nil
	})
}

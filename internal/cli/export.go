package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msavelyeva/nutrikeep/internal/service"
	"github.com/msavelyeva/nutrikeep/internal/transfer"
	"github.com/msavelyeva/nutrikeep/models"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Format   string
	Out      string
	Sections []string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Экспорт данных в JSON или CSV",
		Long: `Экспорт данных дневника в файл или stdout.

Примеры:
  nutrikeep export --format json --out backup.json
  nutrikeep export --format csv
  nutrikeep export --sections weight_history,user_data`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "формат экспорта (json|csv)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "файл результата, по умолчанию stdout")
	cmd.Flags().StringSliceVarP(&opts.Sections, "sections", "s", nil,
		"разделы через запятую ("+strings.Join(models.AllSections, ", ")+"), по умолчанию все")

	return cmd
}

func runExport(ctx context.Context, opts *ExportOptions) error {
	format, err := transfer.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	return withServices(ctx, opts.RootOptions, func(ctx context.Context, svcs *service.Services) error {
		data, err := svcs.TransferService.Export(ctx, opts.Sections, format)
		if err != nil {
			return err
		}

		if opts.Out == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(opts.Out, data, 0o600); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "экспортировано в %s\n", opts.Out)
		return nil
	})
}

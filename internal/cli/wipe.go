package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msavelyeva/nutrikeep/internal/service"
)

// NewWipeCommand creates the wipe command. Without --yes it asks for an
// interactive confirmation because the operation is irreversible.
func NewWipeCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:           "wipe",
		Short:         "Стереть все данные",
		Long:          "Безвозвратно удаляет все записи дневника, кеш продуктов, блюда, историю веса, профиль и настройки.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirmWipePrompt() {
				fmt.Fprintln(os.Stderr, "отменено")
				return nil
			}
			return withServices(cmd.Context(), rootOpts, func(ctx context.Context, svcs *service.Services) error {
				if err := svcs.TransferService.ClearAllData(ctx); err != nil {
					return err
				}
				fmt.Fprintln(os.Stderr, "все данные стёрты")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "не спрашивать подтверждение")

	return cmd
}

func confirmWipePrompt() bool {
	fmt.Fprint(os.Stderr, "Стереть ВСЕ данные без возможности восстановления? Введите \"yes\": ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == "yes"
}

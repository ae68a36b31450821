package cmd

import (
	"fmt"

	"postboard/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить доступность внешнего API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Проверка соединения с %s...\n", app.BaseURL())
		if err := app.CheckConnection(cmd.Context()); err != nil {
			return fmt.Errorf("API недоступен: %w", err)
		}

		color.New(color.FgGreen).Fprintln(out, "✓ Соединение установлено")
		return nil
	},
}

package posts

import (
	"fmt"

	"github.com/spf13/cobra"

	"postboard/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить пост",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.DeletePost(cmd.Context(), id); err != nil {
			return fmt.Errorf("ошибка удаления поста %d: %w", id, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Пост %d удален\n", id)
		return nil
	},
}

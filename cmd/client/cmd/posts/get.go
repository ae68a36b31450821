package posts

import (
	"fmt"

	"github.com/spf13/cobra"

	"postboard/internal/app/client"
)

var getJSON bool

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Показать пост",
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

		post, err := app.Post(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка получения поста %d: %w", id, err)
		}

		if getJSON {
			return printJSON(cmd.OutOrStdout(), post)
		}
		printPost(cmd.OutOrStdout(), post)
		return nil
	},
}

func init() {
	GetCmd.Flags().BoolVar(&getJSON, "json", false, "вывод в формате JSON")
}

package posts

import (
	"fmt"

	"github.com/spf13/cobra"

	"postboard/internal/app/client"
	"postboard/internal/features/posts/presentation"
)

var (
	listLimit  int
	listUserID int
	listJSON   bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Последние посты",
	Long:  `Загружает посты и выводит первые --limit из них в исходном порядке.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		posts, err := app.LatestPosts(cmd.Context(), listUserID, listLimit)
		if err != nil {
			return fmt.Errorf("ошибка получения постов: %w", err)
		}

		out := cmd.OutOrStdout()
		if listJSON {
			return printJSON(out, posts)
		}

		if len(posts) == 0 {
			fmt.Fprintln(out, "Посты не найдены")
			return nil
		}
		heading.Fprintf(out, "Найдено постов: %d\n\n", len(posts))
		return presentation.Table(out, posts)
	},
}

func init() {
	ListCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "сколько постов вывести")
	ListCmd.Flags().IntVar(&listUserID, "user", 0, "только посты пользователя")
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "вывод в формате JSON")
}

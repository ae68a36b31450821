package posts

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"postboard/internal/app/client"
	"postboard/internal/features/posts/domain"
)

var (
	createTitle  string
	createBody   string
	createUserID int
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать пост",
	RunE: func(cmd *cobra.Command, args []string) error {
		if createTitle == "" {
			return errors.New("заголовок обязателен (--title)")
		}

		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		post, err := app.CreatePost(cmd.Context(), domain.NewPost{
			Title:  createTitle,
			Body:   createBody,
			UserID: createUserID,
		})
		if err != nil {
			return fmt.Errorf("ошибка создания поста: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Пост создан, ID: %d\n", post.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createTitle, "title", "", "заголовок")
	CreateCmd.Flags().StringVar(&createBody, "body", "", "текст поста")
	CreateCmd.Flags().IntVar(&createUserID, "user", 1, "ID автора")
}

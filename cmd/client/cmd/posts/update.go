package posts

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"postboard/internal/app/client"
	"postboard/internal/features/posts/domain"
)

var (
	updateTitle  string
	updateBody   string
	updateUserID int
)

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Изменить пост",
	Long: `Если заданы --title, --body и --user, пост заменяется целиком (PUT),
иначе отправляются только указанные поля (PATCH).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		fields := map[string]any{}
		if flags.Changed("title") {
			fields["title"] = updateTitle
		}
		if flags.Changed("body") {
			fields["body"] = updateBody
		}
		if flags.Changed("user") {
			fields["userId"] = updateUserID
		}
		if len(fields) == 0 {
			return errors.New("нечего обновлять: укажите --title, --body или --user")
		}

		var post domain.Post
		if len(fields) == 3 {
			post, err = app.UpdatePost(cmd.Context(), id, domain.NewPost{
				Title:  updateTitle,
				Body:   updateBody,
				UserID: updateUserID,
			})
		} else {
			post, err = app.PatchPost(cmd.Context(), id, fields)
		}
		if err != nil {
			return fmt.Errorf("ошибка обновления поста %d: %w", id, err)
		}

		printPost(cmd.OutOrStdout(), post)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updateTitle, "title", "", "новый заголовок")
	UpdateCmd.Flags().StringVar(&updateBody, "body", "", "новый текст")
	UpdateCmd.Flags().IntVar(&updateUserID, "user", 0, "новый ID автора")
}

package posts

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"postboard/internal/features/posts/domain"
)

// PostsCmd - родительская команда для операций с постами
var PostsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Работа с постами",
	Long:  `Просмотр, создание и удаление постов во внешнем API.`,
}

var heading = color.New(color.FgCyan, color.Bold)

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("некорректный ID %q: %w", raw, domain.ErrInvalidID)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPost(w io.Writer, p domain.Post) {
	heading.Fprintf(w, "#%d %s\n", p.ID, p.Title)
	fmt.Fprintf(w, "Автор: %d\n\n%s\n", p.UserID, p.Body)
}

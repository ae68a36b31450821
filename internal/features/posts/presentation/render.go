// Package presentation renders posts that were already fetched. It never
// performs I/O beyond writing to the writer it is given.
package presentation

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"text/tabwriter"

	"postboard/internal/features/posts/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	listTmpl = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/list.html"))
	postTmpl = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/post.html"))
)

type listPage struct {
	Title string
	Posts []domain.Post
}

type postPage struct {
	Title string
	Post  domain.Post
}

// PostsList renders a full HTML page with the given posts.
func PostsList(w io.Writer, title string, posts []domain.Post) error {
	return listTmpl.ExecuteTemplate(w, "layout", listPage{Title: title, Posts: posts})
}

// PostDetail renders one post as a full HTML page.
func PostDetail(w io.Writer, post domain.Post) error {
	return postTmpl.ExecuteTemplate(w, "layout", postPage{Title: post.Title, Post: post})
}

// Table writes posts as aligned plain-text columns for terminal output.
func Table(w io.Writer, posts []domain.Post) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tUSER\tTITLE"); err != nil {
		return err
	}
	for _, p := range posts {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%s\n", p.ID, p.UserID, p.Title); err != nil {
			return err
		}
	}
	return tw.Flush()
}

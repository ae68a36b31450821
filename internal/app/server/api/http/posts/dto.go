package posts

import "postboard/internal/features/posts/domain"

type ListInput struct {
	Limit  int `query:"limit" minimum:"0" maximum:"100" doc:"Number of posts to return; 0 uses the configured page size"`
	UserID int `query:"userId" minimum:"0" doc:"Only posts of this user"`
}

type ListOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Posts []domain.Post `json:"posts"`
	Count int           `json:"count"`
}

type GetInput struct {
	ID int `path:"id" minimum:"1" doc:"Post ID"`
}

type GetOutput struct {
	Body domain.Post
}

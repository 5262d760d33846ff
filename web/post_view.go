package web

import (
	"html/template"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/nasermirzaei89/postfeed/discuss"
	"github.com/nasermirzaei89/postfeed/timeline"
)

// PostView is the render data of one mounted post.
type PostView struct {
	*timeline.Post

	ViewID          string
	Thread          discuss.Thread
	Comments        []*CommentView
	RequiredMessage string
	ReturnTo        string
	CSRFField       template.HTML
}

// CommentView is the render data handed to the comment template.
type CommentView struct {
	PostID    string
	Content   string
	ReturnTo  string
	CSRFField template.HTML
}

func (h *Handler) newPostView(r *http.Request, post *timeline.Post, view *discuss.View, returnTo string) *PostView {
	csrfField := csrf.TemplateField(r)

	comments := make([]*CommentView, 0, len(view.Thread.Comments))

	for _, content := range view.Thread.Comments {
		comments = append(comments, &CommentView{
			PostID:    post.ID,
			Content:   content,
			ReturnTo:  returnTo,
			CSRFField: csrfField,
		})
	}

	return &PostView{
		Post:            post,
		ViewID:          view.ID,
		Thread:          view.Thread,
		Comments:        comments,
		RequiredMessage: discuss.RequiredMessage,
		ReturnTo:        returnTo,
		CSRFField:       csrfField,
	}
}

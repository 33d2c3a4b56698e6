// Package web provides the HTTP server and web interface for inkwell
package web

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-inkwell/inkwell/internal/models"
	"github.com/go-inkwell/inkwell/internal/utils"
)

// newPostPage handles "GET /new_post" to display an empty creation form
func (s *WebServer) newPostPage(c *gin.Context) {
	data := MakePostPageData{
		TemplateData: s.getBaseTemplateData("New Post"),
		Heading:      "New Post",
		Action:       "/new_post",
	}
	s.renderTemplate(c, "make_post.html", data)
}

// newPostSubmit handles "POST /new_post". On validation failure the form is
// re-rendered with the submitted values so nothing has to be retyped. On
// success the creation date is stamped once and the browser goes back to "/".
func (s *WebServer) newPostSubmit(c *gin.Context) {
	form := postFormFromRequest(c)
	if fieldErrors := form.Validate(); fieldErrors != nil {
		data := MakePostPageData{
			TemplateData: s.getBaseTemplateData("New Post"),
			Heading:      "New Post",
			Action:       "/new_post",
			Form:         form,
			FieldErrors:  fieldErrors,
		}
		s.renderTemplate(c, "make_post.html", data)
		return
	}

	post := &models.BlogPost{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Date:     utils.FormatDisplayDate(time.Now()),
		Body:     form.Body,
		Author:   form.Author,
		ImgURL:   form.ImgURL,
	}

	// A duplicate title violates the UNIQUE constraint and surfaces as an
	// error page. Known gap: no inline form message for this case.
	if err := s.DB.CreatePost(post); err != nil {
		s.renderError(c, http.StatusInternalServerError, "Failed to create post", err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// editPostPage handles "GET /edit_post/:id" and pre-populates the form with
// the post's current values. A missing id fails loudly with an error page:
// the editor is only ever reached from links to existing posts.
func (s *WebServer) editPostPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.renderError(c, http.StatusNotFound, "Invalid post ID", err.Error())
		return
	}

	post, err := s.DB.GetPostByID(id)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Failed to load post", err.Error())
		return
	}

	data := MakePostPageData{
		TemplateData: s.getBaseTemplateData("Edit Post"),
		Heading:      "Edit Post",
		Action:       fmt.Sprintf("/edit_post/%d", post.ID),
		Form: PostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Author:   post.Author,
			ImgURL:   post.ImgURL,
			Body:     post.Body,
		},
	}
	s.renderTemplate(c, "make_post.html", data)
}

// editPostSubmit handles "POST /edit_post/:id". All mutable fields are
// overwritten; id and date keep their original values.
func (s *WebServer) editPostSubmit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.renderError(c, http.StatusNotFound, "Invalid post ID", err.Error())
		return
	}

	form := postFormFromRequest(c)
	if fieldErrors := form.Validate(); fieldErrors != nil {
		data := MakePostPageData{
			TemplateData: s.getBaseTemplateData("Edit Post"),
			Heading:      "Edit Post",
			Action:       fmt.Sprintf("/edit_post/%d", id),
			Form:         form,
			FieldErrors:  fieldErrors,
		}
		s.renderTemplate(c, "make_post.html", data)
		return
	}

	post := &models.BlogPost{
		ID:       id,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		Author:   form.Author,
		ImgURL:   form.ImgURL,
	}

	if err := s.DB.UpdatePost(post); err != nil {
		s.renderError(c, http.StatusInternalServerError, "Failed to update post", err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", id))
}

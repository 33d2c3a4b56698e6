// Package web provides the HTTP server and web interface for inkwell
package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-inkwell/inkwell/internal/database"
	"github.com/go-inkwell/inkwell/internal/models"
)

// postPage handles "/post/:id". A missing or malformed id is not an error
// page: the detail template renders without post data.
func (s *WebServer) postPage(c *gin.Context) {
	var post *models.BlogPost

	if id, err := strconv.Atoi(c.Param("id")); err == nil {
		found, err := s.DB.GetPostByID(id)
		if err != nil && !errors.Is(err, database.ErrPostNotFound) {
			s.renderError(c, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
		post = found
	}

	title := "Post"
	if post != nil {
		title = post.Title
	}

	data := PostPageData{
		TemplateData: s.getBaseTemplateData(title),
		Post:         post,
	}

	s.renderTemplate(c, "post.html", data)
}

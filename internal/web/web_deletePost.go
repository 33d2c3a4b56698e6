// Package web provides the HTTP server and web interface for inkwell
package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-inkwell/inkwell/internal/database"
)

// deletePost handles "/delete_post/:id". Deleting an id that does not exist
// is a silent no-op, unlike edit which fails loudly on a missing post.
func (s *WebServer) deletePost(c *gin.Context) {
	if id, err := strconv.Atoi(c.Param("id")); err == nil {
		if err := s.DB.DeletePost(id); err != nil && !errors.Is(err, database.ErrPostNotFound) {
			s.renderError(c, http.StatusInternalServerError, "Failed to delete post", err.Error())
			return
		}
	}

	c.Redirect(http.StatusFound, "/")
}

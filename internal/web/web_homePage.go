// Package web provides the HTTP server and web interface for inkwell
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *WebServer) homePage(c *gin.Context) {
	posts, err := s.DB.GetAllPosts()
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	data := HomePageData{
		TemplateData: s.getBaseTemplateData("Home"),
		Posts:        posts,
		PostCount:    len(posts),
	}

	s.renderTemplate(c, "home.html", data)
}

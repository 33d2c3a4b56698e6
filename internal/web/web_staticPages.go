// Package web provides the HTTP server and web interface for inkwell
package web

import "github.com/gin-gonic/gin"

func (s *WebServer) aboutPage(c *gin.Context) {
	s.renderTemplate(c, "about.html", s.getBaseTemplateData("About Me"))
}

func (s *WebServer) contactPage(c *gin.Context) {
	s.renderTemplate(c, "contact.html", s.getBaseTemplateData("Contact Me"))
}

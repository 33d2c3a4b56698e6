// Package web provides the HTTP server and web interface for inkwell
package web

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-inkwell/inkwell/internal/config"
	"github.com/go-inkwell/inkwell/internal/models"
)

// TemplateData represents common template data
type TemplateData struct {
	Title       template.HTML
	CurrentTime string
	AppVersion  string
	Port        int
}

// HomePageData represents data for the home page
type HomePageData struct {
	TemplateData
	Posts     []*models.BlogPost
	PostCount int
}

// PostPageData represents data for the post detail page.
// Post is nil when the requested id does not exist; the template handles it.
type PostPageData struct {
	TemplateData
	Post *models.BlogPost
}

// MakePostPageData represents data for the shared create/edit form page
type MakePostPageData struct {
	TemplateData
	Heading     string
	Action      string
	Form        PostForm
	FieldErrors map[string]string
}

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}

// getBaseTemplateData creates a TemplateData struct with common information
func (s *WebServer) getBaseTemplateData(title string) TemplateData {
	return TemplateData{
		Title:       template.HTML(title),
		CurrentTime: time.Now().Format("2006-01-02 15:04:05"),
		AppVersion:  config.AppVersion,
		Port:        s.GetPort(),
	}
}

// renderError renders an error page
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	errorData := struct {
		TemplateData
		Error      string
		StatusCode int
	}{
		TemplateData: s.getBaseTemplateData("Error"),
		Error:        message,
		StatusCode:   statusCode,
	}
	log.Printf("[ERROR]: %d: %s - %s", statusCode, message, errstring)

	// Load template individually to avoid engine setup issues
	tmpl := template.Must(template.ParseFS(EmbeddedTemplatesFS, "templates/base.html", "templates/error.html"))
	c.Header("Content-Type", "text/html")
	c.Status(statusCode)
	err := tmpl.ExecuteTemplate(c.Writer, "base.html", errorData)
	if err != nil {
		log.Printf("Error rendering error template: %v", err)
		c.String(statusCode, "Error: %s - %s", message, errstring)
	}
}

// renderTemplate renders a page template inside the base layout
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	// Load template individually to avoid engine setup issues
	tmpl := template.Must(template.ParseFS(EmbeddedTemplatesFS, "templates/base.html", "templates/"+templateName))
	c.Header("Content-Type", "text/html")
	err := tmpl.ExecuteTemplate(c.Writer, "base.html", data)
	if err != nil {
		log.Printf("Error rendering template %s: %v", templateName, err)
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
	}
}

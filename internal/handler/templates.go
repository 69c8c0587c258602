package handler

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-records/internal/dto"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// LoadTemplates parses the embedded page templates into engine.
func LoadTemplates(engine *gin.Engine) error {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"idSelect": func(page dto.StudentPage, submit bool) dto.IDSelect {
			return dto.IDSelect{Page: page, Submit: submit}
		},
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)
	return nil
}

package view

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"hasPrefix": strings.HasPrefix,
	"split":     strings.Split,
}

// Templates 解析内嵌的页面模板，供 gin SetHTMLTemplate 使用
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

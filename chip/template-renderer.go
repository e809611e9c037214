package main

import (
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"
)

type TemplateRenderer struct {
	baseDir         string
	cachedTemplates *template.Template
	doCache         bool
}

func NewTemplateRenderer(baseDir string, doCache bool) *TemplateRenderer {
	result := &TemplateRenderer{
		baseDir: baseDir,
		doCache: doCache,
	}
	if doCache {
		result.cachedTemplates = template.Must(template.ParseFiles(
			baseDir + "/index.html"))
	}
	return result
}

func setContentTypeFromTemplateName(template_name string, header http.Header) {
	switch {
	case strings.HasSuffix(template_name, ".svg"):
		header.Set("Content-Type", "image/svg+xml")
	default:
		header.Set("Content-Type", "text/html; charset=utf-8")
	}
}

// Render without caching re-parses on every request, which makes
// template editing pleasant during development.
func (h *TemplateRenderer) Render(w io.Writer, header http.Header, template_name string, p interface{}) bool {
	var err error
	if h.doCache {
		templ := h.cachedTemplates.Lookup(template_name)
		if templ == nil {
			return false
		}
		setContentTypeFromTemplateName(template_name, header)
		err = templ.Execute(w, p)
	} else {
		t, err := template.ParseFiles(h.baseDir + "/" + template_name)
		if err != nil {
			log.Printf("%s: %s", template_name, err)
			return false
		}
		setContentTypeFromTemplateName(template_name, header)
		err = t.Execute(w, p)
		if err != nil {
			log.Printf("Template broken %s (%s)", template_name, err)
			return false
		}
		return true
	}
	if err != nil {
		log.Printf("Template broken %s (%s)", template_name, err)
		return false
	}
	return true
}

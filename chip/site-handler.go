// Serving the single page application shell and its static resources.
package main

import (
	"net/http"
	"os"
	"strings"
)

const (
	kSitePage   = "/"
	kStaticPage = "/static/"
)

type SiteHandler struct {
	catalog  *Catalog
	template *TemplateRenderer
}

func AddSiteHandler(catalog *Catalog, template *TemplateRenderer, staticDir string) {
	http.Handle(kSitePage, &SiteHandler{catalog: catalog, template: template})
	http.HandleFunc(kStaticPage, func(w http.ResponseWriter, r *http.Request) {
		staticServe(len(kStaticPage), staticDir, w, r)
	})
}

// indexPage is what the page shell needs server-side; the rest is
// fetched from the JSON endpoints.
type indexPage struct {
	Theme         string
	TourCompleted bool
}

func (h *SiteHandler) ServeHTTP(out http.ResponseWriter, req *http.Request) {
	if req.URL.Path != kSitePage {
		out.WriteHeader(http.StatusNotFound)
		return
	}
	settings := h.catalog.SettingsSnapshot()
	page := &indexPage{
		Theme:         settings.Theme,
		TourCompleted: settings.TourCompleted,
	}
	if !h.template.Render(out, out.Header(), "index.html", page) {
		out.WriteHeader(http.StatusInternalServerError)
	}
}

func staticServe(prefixLen int, staticDir string,
	out http.ResponseWriter, r *http.Request) {
	path := r.URL.Path[prefixLen:]
	if strings.Contains(path, "..") {
		out.WriteHeader(http.StatusNotFound)
		return
	}
	content, err := os.ReadFile(staticDir + "/" + path)
	if err != nil {
		out.WriteHeader(http.StatusNotFound)
		return
	}
	switch {
	case strings.HasSuffix(path, ".css"):
		out.Header()["Content-Type"] = []string{"text/css"}
	case strings.HasSuffix(path, ".js"):
		out.Header()["Content-Type"] = []string{"application/javascript"}
	case strings.HasSuffix(path, ".svg"):
		out.Header()["Content-Type"] = []string{"image/svg+xml"}
	case strings.HasSuffix(path, ".png"):
		out.Header()["Content-Type"] = []string{"image/png"}
	default:
		out.Header()["Content-Type"] = []string{"application/octet-stream"}
	}
	out.Write(content)
}

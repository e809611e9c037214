// Tag registry endpoint. GET lists the registry; POST mutates it with
// an op parameter (add, rename, delete), renames and deletions
// cascading into the records that carry the tag.
package main

import (
	"net/http"
	"time"
)

const kTagsApi = "/api/tags"

type TagHandler struct {
	catalog *Catalog
}

func AddTagHandler(catalog *Catalog) {
	http.Handle(kTagsApi, &TagHandler{catalog: catalog})
}

func (h *TagHandler) ServeHTTP(out http.ResponseWriter, req *http.Request) {
	if req.Method == "POST" {
		h.apiMutate(out, req)
		return
	}
	h.apiList(out, req)
}

func (h *TagHandler) apiList(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("tags-list", time.Now())
	writeJSON(out, http.StatusOK, struct {
		Tags []string `json:"tags"`
	}{h.catalog.Tags()})
}

func (h *TagHandler) apiMutate(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("tags-mutate", time.Now())
	switch r.FormValue("op") {
	case "add":
		if err := h.catalog.AddTag(r.FormValue("name")); err != nil {
			writeError(out, http.StatusBadRequest, err.Error())
			return
		}
		countMutation("tag-add")
	case "rename":
		if err := h.catalog.RenameTag(r.FormValue("old"), r.FormValue("new")); err != nil {
			writeError(out, http.StatusBadRequest, err.Error())
			return
		}
		countMutation("tag-rename")
	case "delete":
		if !confirmGiven(r) {
			writeError(out, http.StatusBadRequest, "tag deletion needs confirm=true")
			return
		}
		if !h.catalog.DeleteTag(r.FormValue("name")) {
			writeError(out, http.StatusNotFound, "no such tag")
			return
		}
		countMutation("tag-delete")
	default:
		writeError(out, http.StatusBadRequest, "op must be add, rename or delete")
		return
	}
	writeJSON(out, http.StatusOK, struct {
		Status string   `json:"status"`
		Tags   []string `json:"tags"`
	}{"ok", h.catalog.Tags()})
}

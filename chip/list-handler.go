// Handling the table view: current page, sort cycling, metric cursors,
// filters and the selection set.
package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	kPageApi           = "/api/page"
	kSortApi           = "/api/sort"
	kMetricApi         = "/api/metric"
	kFilterApi         = "/api/filter"
	kFavoriteFilterApi = "/api/favorite-filter"
	kSelectApi         = "/api/select"
)

type apiMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(out http.ResponseWriter, code int, payload interface{}) {
	out.Header().Set("Content-Type", "application/json")
	out.WriteHeader(code)
	data, _ := json.MarshalIndent(payload, "", "  ")
	out.Write(data)
}

func writeError(out http.ResponseWriter, code int, message string) {
	writeJSON(out, code, apiMessage{Status: "error", Message: message})
}

// confirmGiven: destructive operations need an explicit confirm=true,
// the API-side half of the "are you sure?" prompt. Without it nothing
// changes.
func confirmGiven(r *http.Request) bool {
	return r.FormValue("confirm") == "true"
}

type ListHandler struct {
	catalog *Catalog
}

func AddListHandler(catalog *Catalog) {
	handler := &ListHandler{catalog: catalog}
	http.Handle(kPageApi, handler)
	http.Handle(kSortApi, handler)
	http.Handle(kMetricApi, handler)
	http.Handle(kFilterApi, handler)
	http.Handle(kFavoriteFilterApi, handler)
	http.Handle(kSelectApi, handler)
}

func (h *ListHandler) ServeHTTP(out http.ResponseWriter, req *http.Request) {
	switch {
	case strings.HasPrefix(req.URL.Path, kSortApi):
		h.apiSort(out, req)
	case strings.HasPrefix(req.URL.Path, kMetricApi):
		h.apiMetric(out, req)
	case strings.HasPrefix(req.URL.Path, kFilterApi):
		h.apiFilter(out, req)
	case strings.HasPrefix(req.URL.Path, kFavoriteFilterApi):
		h.apiFavoriteFilter(out, req)
	case strings.HasPrefix(req.URL.Path, kSelectApi):
		h.apiSelect(out, req)
	default:
		h.apiPage(out, req)
	}
}

func (h *ListHandler) apiPage(out http.ResponseWriter, r *http.Request) {
	defer ElapsedPrint("Page view", time.Now())
	defer observeHandler("page", time.Now())
	if page, err := strconv.Atoi(r.FormValue("page")); err == nil {
		h.catalog.SetPage(page)
	}
	writeJSON(out, http.StatusOK, h.catalog.PageView())
}

// apiSort cycles the sort order of a column (asc, desc, none) and
// persists the new sort state.
func (h *ListHandler) apiSort(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("sort", time.Now())
	column := r.FormValue("column")
	if column == "" {
		writeError(out, http.StatusBadRequest, "missing sort column")
		return
	}
	h.catalog.CycleSort(column)
	h.catalog.SaveSortState()
	writeJSON(out, http.StatusOK, h.catalog.PageView())
}

// apiMetric cycles the score or speed display cursor the table (and
// score/speed sorting) uses.
func (h *ListHandler) apiMetric(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("metric", time.Now())
	switch r.FormValue("kind") {
	case "score":
		h.catalog.CycleScoreType()
	case "speed":
		h.catalog.CycleSpeedType()
	default:
		writeError(out, http.StatusBadRequest, "kind must be score or speed")
		return
	}
	writeJSON(out, http.StatusOK, h.catalog.PageView())
}

// apiFilter replaces search term and tag selection. Changing filters
// jumps back to the first page.
func (h *ListHandler) apiFilter(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("filter", time.Now())
	if err := r.ParseForm(); err != nil {
		writeError(out, http.StatusBadRequest, "unparsable form")
		return
	}
	h.catalog.SetSearchTerm(r.FormValue("q"))
	h.catalog.SetFilterTags(r.Form["tag"])
	h.catalog.SetPage(1)
	writeJSON(out, http.StatusOK, h.catalog.PageView())
}

func (h *ListHandler) apiFavoriteFilter(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("favorite-filter", time.Now())
	h.catalog.ToggleFavoriteFilter()
	h.catalog.SaveFavoriteFilter()
	h.catalog.SetPage(1)
	writeJSON(out, http.StatusOK, h.catalog.PageView())
}

// apiSelect replaces the selection set (the checked checkboxes).
func (h *ListHandler) apiSelect(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("select", time.Now())
	if err := r.ParseForm(); err != nil {
		writeError(out, http.StatusBadRequest, "unparsable form")
		return
	}
	ids := make([]int, 0, len(r.Form["id"]))
	for _, raw := range r.Form["id"] {
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeError(out, http.StatusBadRequest, "ids must be integers")
			return
		}
		ids = append(ids, id)
	}
	h.catalog.SetSelectedIds(ids)
	writeJSON(out, http.StatusOK, struct {
		Status   string `json:"status"`
		Selected int    `json:"selected"`
	}{"ok", len(ids)})
}

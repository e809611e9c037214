// Read-only analysis endpoints: two-device comparison, scatter plot
// points and dataset statistics.
package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	kCompareApi = "/api/compare"
	kScatterApi = "/api/scatter"
	kStatsApi   = "/api/stats"
)

type CompareHandler struct {
	catalog *Catalog
}

func AddCompareHandler(catalog *Catalog) {
	handler := &CompareHandler{catalog: catalog}
	http.Handle(kCompareApi, handler)
	http.Handle(kScatterApi, handler)
	http.Handle(kStatsApi, handler)
}

func (h *CompareHandler) ServeHTTP(out http.ResponseWriter, req *http.Request) {
	switch {
	case strings.HasPrefix(req.URL.Path, kScatterApi):
		h.apiScatter(out, req)
	case strings.HasPrefix(req.URL.Path, kStatsApi):
		h.apiStats(out, req)
	default:
		h.apiCompare(out, req)
	}
}

// compareIds resolves which two devices to compare: explicit a and b
// parameters, or the current selection when it holds exactly two.
func (h *CompareHandler) compareIds(r *http.Request) (int, int, bool) {
	a, errA := strconv.Atoi(r.FormValue("a"))
	b, errB := strconv.Atoi(r.FormValue("b"))
	if errA == nil && errB == nil {
		return a, b, true
	}
	selected := h.catalog.SelectedIds()
	if len(selected) == 2 {
		return selected[0], selected[1], true
	}
	return 0, 0, false
}

func (h *CompareHandler) apiCompare(out http.ResponseWriter, r *http.Request) {
	defer ElapsedPrint("Compare", time.Now())
	defer observeHandler("compare", time.Now())
	idA, idB, ok := h.compareIds(r)
	if !ok {
		writeError(out, http.StatusBadRequest,
			"compare needs a and b parameters or exactly two selected devices")
		return
	}
	devA := h.catalog.FindById(idA)
	devB := h.catalog.FindById(idB)
	if devA == nil || devB == nil {
		writeError(out, http.StatusNotFound, "one of the devices does not exist")
		return
	}
	writeJSON(out, http.StatusOK, struct {
		A    string          `json:"a"`
		B    string          `json:"b"`
		Rows []ComparisonRow `json:"rows"`
	}{devA.Name, devB.Name, CompareDevices(devA, devB, h.catalog.ScoreSettings())})
}

func (h *CompareHandler) apiScatter(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("scatter", time.Now())
	writeJSON(out, http.StatusOK, struct {
		Settings ScatterSettings `json:"settings"`
		Points   []ScatterPoint  `json:"points"`
	}{h.catalog.ScatterSettingsValue(), h.catalog.ScatterPoints()})
}

func (h *CompareHandler) apiStats(out http.ResponseWriter, r *http.Request) {
	defer ElapsedPrint("Statistics", time.Now())
	defer observeHandler("stats", time.Now())
	writeJSON(out, http.StatusOK, h.catalog.Statistics())
}

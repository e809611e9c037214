// All settings domains in one endpoint: GET returns the full snapshot,
// POST replaces it (validated as a whole), POST /reset drops every
// settings blob back to defaults.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	kSettingsApi      = "/api/settings"
	kSettingsResetApi = "/api/settings/reset"
)

// SettingsPayload is the settings dialog state: one field per settings
// domain. The same shape goes out on GET and comes back on POST.
type SettingsPayload struct {
	ColumnVisibility map[string]bool           `json:"columnVisibility"`
	ChartVisibility  map[string]bool           `json:"chartVisibility"`
	ScatterSettings  ScatterSettings           `json:"scatterSettings"`
	ScoreSettings    map[string]ScoreThreshold `json:"scoreSettings"`
	PreviewSettings  map[string]bool           `json:"previewSettings"`
	ItemsPerPage     int                       `json:"itemsPerPage"`
	Theme            string                    `json:"theme"`
	TourCompleted    bool                      `json:"tourCompleted"`
}

// SettingsSnapshot copies the current state of every settings domain.
func (c *Catalog) SettingsSnapshot() SettingsPayload {
	c.lock.Lock()
	defer c.lock.Unlock()
	scores := make(map[string]ScoreThreshold, len(c.scoreSettings))
	for k, v := range c.scoreSettings {
		scores[k] = v
	}
	return SettingsPayload{
		ColumnVisibility: copyFlags(c.columnVisibility),
		ChartVisibility:  copyFlags(c.chartVisibility),
		ScatterSettings:  c.scatterSettings,
		ScoreSettings:    scores,
		PreviewSettings:  copyFlags(c.previewSettings),
		ItemsPerPage:     c.itemsPerPage,
		Theme:            c.theme,
		TourCompleted:    c.tourCompleted,
	}
}

// ApplySettings validates and installs a full settings payload, then
// persists every domain. A change of page size restarts on page one.
func (c *Catalog) ApplySettings(p SettingsPayload) error {
	if p.ItemsPerPage < kMinItemsPerPage || p.ItemsPerPage > kMaxItemsPerPage {
		return fmt.Errorf("items per page must be between %d and %d",
			kMinItemsPerPage, kMaxItemsPerPage)
	}
	if p.Theme != "light" && p.Theme != "dark" {
		return fmt.Errorf("theme must be light or dark")
	}
	if err := ValidateThresholds(p.ScoreSettings); err != nil {
		return err
	}
	c.lock.Lock()
	c.columnVisibility = backfillFlags(p.ColumnVisibility, defaultColumnVisibility())
	c.chartVisibility = backfillFlags(p.ChartVisibility, defaultChartVisibility())
	c.scatterSettings = p.ScatterSettings
	c.scoreSettings = p.ScoreSettings
	c.previewSettings = backfillFlags(p.PreviewSettings, defaultPreviewSettings())
	c.itemsPerPage = p.ItemsPerPage
	c.theme = p.Theme
	c.tourCompleted = p.TourCompleted
	c.currentPage = 1
	c.lock.Unlock()

	c.SaveColumnVisibility()
	c.SaveChartVisibility()
	c.SaveScatterSettings()
	c.SaveScoreSettings()
	c.SavePagination()
	c.SavePreviewSettings()
	c.SaveTheme()
	c.SaveTour()
	return nil
}

type SettingsHandler struct {
	catalog *Catalog
}

func AddSettingsHandler(catalog *Catalog) {
	handler := &SettingsHandler{catalog: catalog}
	http.Handle(kSettingsApi, handler)
	http.Handle(kSettingsResetApi, handler)
}

func (h *SettingsHandler) ServeHTTP(out http.ResponseWriter, req *http.Request) {
	switch {
	case strings.HasPrefix(req.URL.Path, kSettingsResetApi):
		h.apiReset(out, req)
	case req.Method == "POST":
		h.apiSave(out, req)
	default:
		h.apiGet(out, req)
	}
}

func (h *SettingsHandler) apiGet(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("settings-get", time.Now())
	writeJSON(out, http.StatusOK, h.catalog.SettingsSnapshot())
}

func (h *SettingsHandler) apiSave(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("settings-save", time.Now())
	payload := h.catalog.SettingsSnapshot() // absent fields keep their value
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(out, http.StatusBadRequest, "malformed settings payload")
		return
	}
	if err := h.catalog.ApplySettings(payload); err != nil {
		writeError(out, http.StatusUnprocessableEntity, err.Error())
		return
	}
	countMutation("settings")
	writeJSON(out, http.StatusOK, h.catalog.SettingsSnapshot())
}

// apiReset wipes all settings blobs. The device list and tag registry
// are not settings and survive.
func (h *SettingsHandler) apiReset(out http.ResponseWriter, r *http.Request) {
	defer observeHandler("settings-reset", time.Now())
	if !confirmGiven(r) {
		writeError(out, http.StatusBadRequest, "settings reset needs confirm=true")
		return
	}
	h.catalog.ResetSettings()
	countMutation("settings-reset")
	writeJSON(out, http.StatusOK, h.catalog.SettingsSnapshot())
}

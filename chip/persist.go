// Persistence adapter: maps every settings domain plus the device list
// and tag registry to its versioned blob. Loading is forgiving: a
// missing key yields the domain default, a broken blob is logged and
// replaced by the default, and blobs written by older versions get any
// newly introduced keys backfilled from the defaults. Saving serializes
// the in-memory value verbatim.
package main

import (
	"encoding/json"
	"log"
	"strconv"
)

// loadJSONBlob parses the blob under key into target. Returns false if
// the key is absent or the blob does not parse; the caller then falls
// back to the domain default.
func (c *Catalog) loadJSONBlob(key string, target interface{}) bool {
	raw, ok := c.blobs.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		log.Printf("Broken blob %s, falling back to defaults (%v)", key, err)
		return false
	}
	return true
}

func (c *Catalog) saveJSONBlob(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Serializing %s: %v", key, err)
		return
	}
	if err := c.blobs.Put(key, string(data)); err != nil {
		log.Printf("Storing %s: %v", key, err)
	}
}

// backfillFlags fills keys missing from a stored visibility/flag map
// with their default, so old blobs keep working when new keys appear.
func backfillFlags(stored, defaults map[string]bool) map[string]bool {
	if stored == nil {
		stored = make(map[string]bool, len(defaults))
	}
	for key, value := range defaults {
		if _, ok := stored[key]; !ok {
			stored[key] = value
		}
	}
	return stored
}

// sanitizeDevices normalizes records coming from a stored blob or an
// import file: exactly the canonical score keys (missing ones null),
// a non-nil tag list, and a synthetic unique id where none was set.
func sanitizeDevices(devices []Device) []Device {
	maxId := 0
	for i := range devices {
		if devices[i].Id > maxId {
			maxId = devices[i].Id
		}
	}
	nextSynthetic := maxId + 1
	for i := range devices {
		d := &devices[i]
		scores := make(map[string]*float64, len(scoreKeys))
		for _, key := range scoreKeys {
			scores[key] = d.Scores[key]
		}
		d.Scores = scores
		if d.Tags == nil {
			d.Tags = []string{}
		}
		if d.Id == 0 {
			d.Id = nextSynthetic
			nextSynthetic++
		}
	}
	return devices
}

func (c *Catalog) loadAll() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.loadAllLocked()
}

func (c *Catalog) loadAllLocked() {
	c.loadDevices()
	c.loadTags()
	c.loadSortState()
	c.loadFavoriteFilter()
	c.loadColumnVisibility()
	c.loadChartVisibility()
	c.loadScatterSettings()
	c.loadScoreSettings()
	c.loadPagination()
	c.loadPreviewSettings()
	c.loadTheme()
	c.loadTour()
}

func (c *Catalog) loadDevices() {
	var devices []Device
	if !c.loadJSONBlob(kDataKey, &devices) {
		devices = defaultDevices()
	}
	c.devices = sanitizeDevices(devices)
}

func (c *Catalog) loadTags() {
	var tags []string
	if !c.loadJSONBlob(kTagsKey, &tags) || tags == nil {
		tags = defaultTags()
	}
	c.tags = tags
}

func (c *Catalog) loadSortState() {
	state := defaultSortState()
	c.loadJSONBlob(kSortKey, &state)
	c.sortState = state
}

func (c *Catalog) loadFavoriteFilter() {
	raw, _ := c.blobs.Get(kFavoriteFilterKey)
	c.favoriteFilter = raw == "true"
}

func (c *Catalog) loadColumnVisibility() {
	stored := make(map[string]bool)
	if !c.loadJSONBlob(kColumnVisibilityKey, &stored) {
		stored = make(map[string]bool)
	}
	c.columnVisibility = backfillFlags(stored, defaultColumnVisibility())
}

func (c *Catalog) loadChartVisibility() {
	stored := make(map[string]bool)
	if !c.loadJSONBlob(kChartVisibilityKey, &stored) {
		stored = make(map[string]bool)
	}
	c.chartVisibility = backfillFlags(stored, defaultChartVisibility())
}

func (c *Catalog) loadScatterSettings() {
	settings := defaultScatterSettings()
	c.loadJSONBlob(kScatterKey, &settings)
	c.scatterSettings = settings
}

func (c *Catalog) loadScoreSettings() {
	stored := make(map[string]ScoreThreshold)
	if !c.loadJSONBlob(kScoreSettingsKey, &stored) {
		stored = make(map[string]ScoreThreshold)
	}
	for key, value := range defaultScoreSettings() {
		if _, ok := stored[key]; !ok {
			stored[key] = value
		}
	}
	c.scoreSettings = stored
}

func (c *Catalog) loadPagination() {
	raw, _ := c.blobs.Get(kPaginationKey)
	count, err := strconv.Atoi(raw)
	if err != nil || count <= 0 {
		count = kDefaultItemsPerPage
	}
	c.itemsPerPage = count
}

func (c *Catalog) loadPreviewSettings() {
	stored := make(map[string]bool)
	if !c.loadJSONBlob(kPreviewKey, &stored) {
		stored = make(map[string]bool)
	}
	c.previewSettings = backfillFlags(stored, defaultPreviewSettings())
}

func (c *Catalog) loadTheme() {
	raw, _ := c.blobs.Get(kThemeKey)
	if raw != "light" && raw != "dark" {
		raw = "light"
	}
	c.theme = raw
}

func (c *Catalog) loadTour() {
	raw, _ := c.blobs.Get(kTourKey)
	c.tourCompleted = raw == "true"
}

// Save operations. Callers invoke these after mutating the Catalog;
// nothing here validates, the current value goes out as-is.

func (c *Catalog) saveDevicesLocked() { c.saveJSONBlob(kDataKey, c.devices) }
func (c *Catalog) saveTagsLocked()    { c.saveJSONBlob(kTagsKey, c.tags) }

func (c *Catalog) SaveDevices() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.saveDevicesLocked()
}

func (c *Catalog) SaveTags() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.saveTagsLocked()
}

func (c *Catalog) SaveSortState() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.saveJSONBlob(kSortKey, c.sortState)
}

func (c *Catalog) SaveFavoriteFilter() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.putString(kFavoriteFilterKey, strconv.FormatBool(c.favoriteFilter))
}

func (c *Catalog) SaveColumnVisibility() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.saveJSONBlob(kColumnVisibilityKey, c.columnVisibility)
}

func (c *Catalog) SaveChartVisibility() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.saveJSONBlob(kChartVisibilityKey, c.chartVisibility)
}

func (c *Catalog) SaveScatterSettings() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.saveJSONBlob(kScatterKey, c.scatterSettings)
}

func (c *Catalog) SaveScoreSettings() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.saveJSONBlob(kScoreSettingsKey, c.scoreSettings)
}

func (c *Catalog) SavePagination() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.putString(kPaginationKey, strconv.Itoa(c.itemsPerPage))
}

func (c *Catalog) SavePreviewSettings() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.saveJSONBlob(kPreviewKey, c.previewSettings)
}

func (c *Catalog) SaveTheme() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.putString(kThemeKey, c.theme)
}

func (c *Catalog) SaveTour() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.putString(kTourKey, strconv.FormatBool(c.tourCompleted))
}

func (c *Catalog) putString(key, value string) {
	if err := c.blobs.Put(key, value); err != nil {
		log.Printf("Storing %s: %v", key, err)
	}
}

// ResetSettings removes every settings blob (device list and tag
// registry survive) and reloads, which re-establishes all defaults.
func (c *Catalog) ResetSettings() {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, key := range settingsKeys {
		if err := c.blobs.Delete(key); err != nil {
			log.Printf("Removing %s: %v", key, err)
		}
	}
	c.currentPage = 1
	c.loadAllLocked()
}
